// Package duration parses and formats human-friendly elapsed-time text such
// as "2h 37m" or "5weeks 3days 9h 3m 53s".
//
// Input is a sequence of <integer><unit> pairs with optional whitespace
// between them. Pairs may repeat and appear in any order; they are summed.
// Output is always in descending unit order with one canonical spelling per
// unit, so Parse(Format(d)) == d for every d.
//
// Months and years are calendar-naive: a month is exactly 30 days and a year
// exactly 365 days. They are not suitable for calendar arithmetic.
package duration

import (
	"math"
	"math/bits"
	"time"
)

const nanosPerSecond = 1_000_000_000

// Elapsed is a non-negative span of time stored as whole seconds plus a
// nanosecond remainder in [0, 1e9). The zero value is a zero duration.
//
// Unlike time.Duration, which tops out near 292 years, Elapsed covers the
// full unsigned 64-bit seconds range.
type Elapsed struct {
	secs  uint64
	nanos uint32
}

// New returns secs seconds plus nanos nanoseconds. Nanoseconds beyond one
// second are carried into secs. New panics if the carry overflows.
func New(secs uint64, nanos uint32) Elapsed {
	carry := uint64(nanos / nanosPerSecond)
	s, c := bits.Add64(secs, carry, 0)
	if c != 0 {
		panic("duration: overflow in New")
	}
	return Elapsed{secs: s, nanos: nanos % nanosPerSecond}
}

// FromStd converts a time.Duration. It reports false for negative input.
func FromStd(d time.Duration) (Elapsed, bool) {
	if d < 0 {
		return Elapsed{}, false
	}
	return Elapsed{
		secs:  uint64(d / time.Second),
		nanos: uint32(d % time.Second),
	}, true
}

// Std converts e to a time.Duration. It reports false when e does not fit.
func (e Elapsed) Std() (time.Duration, bool) {
	if e.secs > uint64(math.MaxInt64/nanosPerSecond) {
		return 0, false
	}
	ns := int64(e.secs) * nanosPerSecond
	if ns > math.MaxInt64-int64(e.nanos) {
		return 0, false
	}
	return time.Duration(ns + int64(e.nanos)), true
}

// Seconds returns the whole seconds.
func (e Elapsed) Seconds() uint64 { return e.secs }

// Subsec returns the nanosecond remainder, always below one second.
func (e Elapsed) Subsec() uint32 { return e.nanos }

// IsZero reports whether e is zero.
func (e Elapsed) IsZero() bool { return e.secs == 0 && e.nanos == 0 }

// Compare returns -1, 0 or +1 depending on whether e is shorter than, equal
// to, or longer than other.
func (e Elapsed) Compare(other Elapsed) int {
	switch {
	case e.secs < other.secs:
		return -1
	case e.secs > other.secs:
		return 1
	case e.nanos < other.nanos:
		return -1
	case e.nanos > other.nanos:
		return 1
	}
	return 0
}

// Add returns e+other, or false on overflow.
func (e Elapsed) Add(other Elapsed) (Elapsed, bool) {
	nanos := e.nanos + other.nanos
	var carry uint64
	if nanos >= nanosPerSecond {
		nanos -= nanosPerSecond
		carry = 1
	}
	secs, c1 := bits.Add64(e.secs, other.secs, 0)
	secs, c2 := bits.Add64(secs, carry, 0)
	if c1|c2 != 0 {
		return Elapsed{}, false
	}
	return Elapsed{secs: secs, nanos: nanos}, true
}

// Sub returns e-other, or false when other is longer than e.
func (e Elapsed) Sub(other Elapsed) (Elapsed, bool) {
	if e.Compare(other) < 0 {
		return Elapsed{}, false
	}
	secs := e.secs - other.secs
	nanos := e.nanos
	if nanos < other.nanos {
		nanos += nanosPerSecond
		secs--
	}
	return Elapsed{secs: secs, nanos: nanos - other.nanos}, true
}

// String returns the canonical text form, see Format.
func (e Elapsed) String() string {
	return Format(e)
}
