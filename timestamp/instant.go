// Package timestamp parses and formats RFC 3339 UTC timestamps such as
// "2018-02-14T00:28:07Z".
//
// ParseStrict accepts only the full grammar YYYY-MM-DDTHH:MM:SS[.f]Z and is
// the inverse of Format. ParseWeak also accepts a space separator, a missing
// Z and trailing whitespace; it is meant for typed input and its results do
// not round-trip byte for byte. Numeric UTC offsets are not supported.
package timestamp

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/auth-platform/libs/go/humantime/duration"
	"github.com/auth-platform/libs/go/humantime/internal/calendar"
)

const nanosPerSecond = 1_000_000_000

// Instant is a point in time: seconds since 1970-01-01T00:00:00Z plus a
// nanosecond remainder in [0, 1e9). Pre-epoch instants have negative
// seconds. The zero value is the epoch.
type Instant struct {
	sec  int64
	nsec uint32
}

// Unix returns the instant sec seconds and nsec nanoseconds after the epoch.
// nsec may be outside [0, 1e9); it is floored into sec. The seconds wrap
// when that carry leaves the int64 range; use CheckedUnix for untrusted
// input.
func Unix(sec, nsec int64) Instant {
	q, r := calendar.FloorDivMod(nsec, nanosPerSecond)
	return Instant{sec: sec + q, nsec: uint32(r)}
}

// CheckedUnix is Unix, reporting false instead of wrapping when carrying
// nsec into sec overflows.
func CheckedUnix(sec, nsec int64) (Instant, bool) {
	q, r := calendar.FloorDivMod(nsec, nanosPerSecond)
	s, ok := addInt64(sec, q)
	if !ok {
		return Instant{}, false
	}
	return Instant{sec: s, nsec: uint32(r)}, true
}

// FromTime converts t, in any location, to an Instant.
func FromTime(t time.Time) Instant {
	return Instant{sec: t.Unix(), nsec: uint32(t.Nanosecond())}
}

// Time returns i as a UTC time.Time.
func (i Instant) Time() time.Time {
	return time.Unix(i.sec, int64(i.nsec)).UTC()
}

// Unix returns the seconds since the epoch.
func (i Instant) Unix() int64 { return i.sec }

// Nanosecond returns the nanosecond remainder.
func (i Instant) Nanosecond() uint32 { return i.nsec }

// Compare returns -1, 0 or +1 depending on whether i is before, equal to,
// or after other.
func (i Instant) Compare(other Instant) int {
	switch {
	case i.sec < other.sec:
		return -1
	case i.sec > other.sec:
		return 1
	case i.nsec < other.nsec:
		return -1
	case i.nsec > other.nsec:
		return 1
	}
	return 0
}

// Equal reports whether i and other are the same instant.
func (i Instant) Equal(other Instant) bool { return i == other }

// Add returns i+d, or false when the result overflows.
func (i Instant) Add(d duration.Elapsed) (Instant, bool) {
	nsec := i.nsec + d.Subsec()
	var carry uint64
	if nsec >= nanosPerSecond {
		nsec -= nanosPerSecond
		carry = 1
	}
	sum, over := bits.Add64(biased(i.sec), d.Seconds(), carry)
	if over != 0 {
		return Instant{}, false
	}
	return Instant{sec: unbiased(sum), nsec: nsec}, true
}

// Sub returns i-d, or false when the result overflows.
func (i Instant) Sub(d duration.Elapsed) (Instant, bool) {
	nsec := i.nsec
	var borrow uint64
	if nsec < d.Subsec() {
		nsec += nanosPerSecond
		borrow = 1
	}
	diff, under := bits.Sub64(biased(i.sec), d.Seconds(), borrow)
	if under != 0 {
		return Instant{}, false
	}
	return Instant{sec: unbiased(diff), nsec: nsec - d.Subsec()}, true
}

// Since returns the time elapsed from earlier to i. It reports false when
// earlier is after i.
func (i Instant) Since(earlier Instant) (duration.Elapsed, bool) {
	if i.Compare(earlier) < 0 {
		return duration.Elapsed{}, false
	}
	// Two's complement subtraction is exact for the non-negative difference.
	secs := uint64(i.sec) - uint64(earlier.sec)
	nsec := i.nsec
	if nsec < earlier.nsec {
		nsec += nanosPerSecond
		secs--
	}
	return duration.New(secs, nsec-earlier.nsec), true
}

// String returns the RFC 3339 form with automatic precision. Instants outside
// years 0000-9999 print as raw seconds.
func (i Instant) String() string {
	s, err := Format(i)
	if err != nil {
		return fmt.Sprintf("Instant(%d.%09d)", i.sec, i.nsec)
	}
	return s
}

// biased maps int64 onto uint64 preserving order, so the full uint64 range
// of a duration can be added with a single carry check.
func biased(sec int64) uint64 { return uint64(sec) ^ 1<<63 }

func unbiased(u uint64) int64 { return int64(u ^ 1<<63) }

func addInt64(a, b int64) (int64, bool) {
	s, _ := bits.Add64(uint64(a), uint64(b), 0)
	r := int64(s)
	if (b > 0 && r < a) || (b < 0 && r > a) {
		return 0, false
	}
	return r, true
}
