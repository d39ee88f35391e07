package duration

import (
	"math/bits"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Parse converts text such as "1hour 12min 5s" into an Elapsed. Whitespace
// is allowed around pairs and between a number and its unit ("2 minutes").
//
// Accepted spellings per unit (case-sensitive, so "m" is minutes and "M" is
// months):
//
//   - nanos, nsec, ns
//   - micros, usec, us, µs
//   - millis, msec, ms
//   - seconds, second, secs, sec, s
//   - minutes, minute, mins, min, m
//   - hours, hour, hrs, hr, h, H
//   - days, day, dys, dy, d, D
//   - weeks, week, wks, wk, w, W
//   - months, month, mths, mth, M (30 days)
//   - years, year, yrs, yr, y, Y (365 days)
//
// Empty input is an error, not a zero duration. The returned error is always
// a *Error.
func Parse(text string) (Elapsed, error) {
	p := parser{src: text}
	return p.parse()
}

// MustParse is like Parse but panics on invalid input. It is meant for
// package-level defaults.
func MustParse(text string) Elapsed {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return e
}

type parser struct {
	src string
	pos int
}

func (p *parser) parse() (Elapsed, error) {
	var total Elapsed
	p.skipSpace()
	if p.eof() {
		return Elapsed{}, &Error{Kind: NumberExpected, Offset: 0}
	}

	for !p.eof() {
		start := p.pos
		n, err := p.number()
		if err != nil {
			return Elapsed{}, err
		}

		p.skipSpace()
		unitStart := p.pos
		token := p.unitToken()
		u, ok := lookupUnit(token)
		if !ok {
			return Elapsed{}, &Error{Kind: UnknownUnit, Offset: unitStart, Token: token}
		}

		part, ok := scale(n, u)
		if !ok {
			return Elapsed{}, &Error{Kind: NumberOverflow, Offset: start}
		}
		if total, ok = total.Add(part); !ok {
			return Elapsed{}, &Error{Kind: NumberOverflow, Offset: start}
		}

		p.skipSpace()
	}
	return total, nil
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// number reads a maximal run of ASCII digits.
func (p *parser) number() (uint64, error) {
	start := p.pos
	for !p.eof() && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return 0, &Error{Kind: NumberExpected, Offset: start}
	}
	n, err := strconv.ParseUint(p.src[start:p.pos], 10, 64)
	if err != nil {
		return 0, &Error{Kind: NumberOverflow, Offset: start}
	}
	return n, nil
}

// unitToken reads a maximal run of letters. The micro sign is a letter.
func (p *parser) unitToken() string {
	start := p.pos
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsLetter(r) {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos]
}

// scale multiplies n by the unit length, reporting false when the product
// does not fit in Elapsed.
func scale(n uint64, u UnitInfo) (Elapsed, bool) {
	if u.Seconds == 0 {
		perSecond := uint64(nanosPerSecond / u.Nanos)
		return Elapsed{
			secs:  n / perSecond,
			nanos: uint32(n%perSecond) * u.Nanos,
		}, true
	}
	hi, lo := bits.Mul64(n, u.Seconds)
	if hi != 0 {
		return Elapsed{}, false
	}
	return Elapsed{secs: lo}, true
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
