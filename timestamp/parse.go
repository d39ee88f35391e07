package timestamp

import (
	"github.com/auth-platform/libs/go/humantime/internal/calendar"
)

// ParseStrict parses YYYY-MM-DDTHH:MM:SS[.f]Z where the fraction has 1 to 9
// digits. Every literal is required and nothing may follow the Z. The
// returned error is always a *Error.
func ParseStrict(text string) (Instant, error) {
	s := scanner{src: text}
	return s.parse()
}

// ParseWeak is ParseStrict relaxed for typed input: the date and time may be
// separated by a single space, the Z is optional (UTC is assumed) and
// trailing whitespace is ignored.
func ParseWeak(text string) (Instant, error) {
	s := scanner{src: text, weak: true}
	return s.parse()
}

// MustParse is like ParseStrict but panics on invalid input.
func MustParse(text string) Instant {
	i, err := ParseStrict(text)
	if err != nil {
		panic(err)
	}
	return i
}

type scanner struct {
	src  string
	pos  int
	weak bool
}

func (s *scanner) parse() (Instant, error) {
	year, err := s.field(4, "year")
	if err != nil {
		return Instant{}, err
	}
	if err := s.literal('-'); err != nil {
		return Instant{}, err
	}

	monthAt := s.pos
	month, err := s.field(2, "month")
	if err != nil {
		return Instant{}, err
	}
	if month < 1 || month > 12 {
		return Instant{}, &Error{Kind: FieldOutOfRange, Offset: monthAt, Field: "month"}
	}
	if err := s.literal('-'); err != nil {
		return Instant{}, err
	}

	dayAt := s.pos
	day, err := s.field(2, "day")
	if err != nil {
		return Instant{}, err
	}
	if day < 1 || day > calendar.DaysIn(month, int64(year)) {
		return Instant{}, &Error{Kind: FieldOutOfRange, Offset: dayAt, Field: "day"}
	}

	if err := s.separator(); err != nil {
		return Instant{}, err
	}

	hour, err := s.ranged(23, "hour")
	if err != nil {
		return Instant{}, err
	}
	if err := s.literal(':'); err != nil {
		return Instant{}, err
	}
	minute, err := s.ranged(59, "minute")
	if err != nil {
		return Instant{}, err
	}
	if err := s.literal(':'); err != nil {
		return Instant{}, err
	}
	second, err := s.ranged(59, "second")
	if err != nil {
		return Instant{}, err
	}

	nsec, err := s.fraction()
	if err != nil {
		return Instant{}, err
	}
	if err := s.zone(); err != nil {
		return Instant{}, err
	}

	days := calendar.DaysFromCivil(int64(year), month, day)
	sec := days*86_400 + int64(hour*3_600+minute*60+second)
	return Instant{sec: sec, nsec: nsec}, nil
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

// field reads exactly n digits. A run of the wrong length is InvalidFormat
// unless it was cut short by a byte that belongs to no part of the grammar,
// which is InvalidDigit at that byte.
func (s *scanner) field(n int, name string) (int, error) {
	start := s.pos
	for !s.eof() && isDigit(s.src[s.pos]) {
		s.pos++
	}
	run := s.pos - start
	if run == n {
		v := 0
		for i := start; i < s.pos; i++ {
			v = v*10 + int(s.src[i]-'0')
		}
		return v, nil
	}
	if run < n && !s.eof() && !isPunct(s.src[s.pos]) {
		return 0, &Error{Kind: InvalidDigit, Offset: s.pos}
	}
	return 0, &Error{Kind: InvalidFormat, Offset: start, Field: name}
}

// ranged reads a two-digit field and checks it against [0, limit].
func (s *scanner) ranged(limit int, name string) (int, error) {
	start := s.pos
	v, err := s.field(2, name)
	if err != nil {
		return 0, err
	}
	if v > limit {
		return 0, &Error{Kind: FieldOutOfRange, Offset: start, Field: name}
	}
	return v, nil
}

func (s *scanner) literal(c byte) error {
	if s.eof() || s.src[s.pos] != c {
		return &Error{Kind: InvalidFormat, Offset: s.pos, Field: "'" + string(c) + "'"}
	}
	s.pos++
	return nil
}

func (s *scanner) separator() error {
	if s.weak && !s.eof() && s.src[s.pos] == ' ' {
		s.pos++
		return nil
	}
	return s.literal('T')
}

// fraction reads an optional '.' and 1-9 digits, scaled to nanoseconds.
func (s *scanner) fraction() (uint32, error) {
	if s.eof() || s.src[s.pos] != '.' {
		return 0, nil
	}
	s.pos++
	start := s.pos
	var v uint32
	for !s.eof() && isDigit(s.src[s.pos]) {
		if s.pos-start < 9 {
			v = v*10 + uint32(s.src[s.pos]-'0')
		}
		s.pos++
	}
	run := s.pos - start
	if run == 0 && !s.eof() && !isPunct(s.src[s.pos]) {
		return 0, &Error{Kind: InvalidDigit, Offset: s.pos}
	}
	if run == 0 || run > 9 {
		return 0, &Error{Kind: InvalidFormat, Offset: start, Field: "fraction"}
	}
	for ; run < 9; run++ {
		v *= 10
	}
	return v, nil
}

// zone consumes the Z suffix and checks that the input ends.
func (s *scanner) zone() error {
	if !s.eof() && s.src[s.pos] == 'Z' {
		s.pos++
	} else if !s.weak {
		return &Error{Kind: InvalidFormat, Offset: s.pos, Field: "'Z'"}
	}
	if s.weak {
		for !s.eof() && isSpace(s.src[s.pos]) {
			s.pos++
		}
	}
	if !s.eof() {
		return &Error{Kind: InvalidFormat, Offset: s.pos, Field: "end of input"}
	}
	return nil
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// isPunct reports whether b is one of the grammar's literal bytes.
func isPunct(b byte) bool {
	switch b {
	case '-', ':', 'T', '.', 'Z', ' ':
		return true
	}
	return false
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
