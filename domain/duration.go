package domain

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"time"

	"github.com/auth-platform/libs/go/humantime/duration"
)

// ErrDurationOverflow is returned when duration arithmetic exceeds the
// representable range.
var ErrDurationOverflow = errors.New("duration overflow")

// Duration represents a validated, non-negative duration with
// human-readable parsing.
type Duration struct {
	value duration.Elapsed
}

// NewDuration creates a Duration from time.Duration. Negative values are
// rejected.
func NewDuration(d time.Duration) (Duration, error) {
	e, ok := duration.FromStd(d)
	if !ok {
		return Duration{}, fmt.Errorf("duration cannot be negative: %s", d)
	}
	return Duration{value: e}, nil
}

// FromElapsed creates a Duration from a codec value.
func FromElapsed(e duration.Elapsed) Duration {
	return Duration{value: e}
}

// ParseDuration parses a human-readable duration string such as
// "1hour 12min 5s". See duration.Parse for the grammar.
func ParseDuration(value string) (Duration, error) {
	e, err := duration.Parse(value)
	if err != nil {
		return Duration{}, fmt.Errorf("invalid duration %q: %w", value, err)
	}
	return Duration{value: e}, nil
}

// MustParseDuration parses a duration, panicking on invalid input.
func MustParseDuration(value string) Duration {
	d, err := ParseDuration(value)
	if err != nil {
		panic(err)
	}
	return d
}

// Seconds creates a Duration from seconds.
func Seconds(n uint64) Duration {
	return Duration{value: duration.New(n, 0)}
}

// Minutes creates a Duration from minutes. It panics on overflow.
func Minutes(n uint64) Duration {
	return scaled(n, duration.SecondsPerMinute)
}

// Hours creates a Duration from hours. It panics on overflow.
func Hours(n uint64) Duration {
	return scaled(n, duration.SecondsPerHour)
}

// Days creates a Duration from days. It panics on overflow.
func Days(n uint64) Duration {
	return scaled(n, duration.SecondsPerDay)
}

func scaled(n, unit uint64) Duration {
	hi, lo := bits.Mul64(n, unit)
	if hi != 0 {
		panic(ErrDurationOverflow)
	}
	return Duration{value: duration.New(lo, 0)}
}

// Elapsed returns the underlying codec value.
func (d Duration) Elapsed() duration.Elapsed {
	return d.value
}

// Std returns the duration as time.Duration, reporting false when it is
// longer than about 292 years.
func (d Duration) Std() (time.Duration, bool) {
	return d.value.Std()
}

// Value returns the duration as time.Duration, clamped to the largest
// time.Duration.
func (d Duration) Value() time.Duration {
	v, ok := d.value.Std()
	if !ok {
		return time.Duration(math.MaxInt64)
	}
	return v
}

// String returns the canonical text form, e.g. "2h 37m".
func (d Duration) String() string {
	return d.value.String()
}

// IsZero returns true if the duration is zero.
func (d Duration) IsZero() bool {
	return d.value.IsZero()
}

// Equals checks if two durations are equal.
func (d Duration) Equals(other Duration) bool {
	return d.value == other.value
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than, equal
// to, or longer than other.
func (d Duration) Compare(other Duration) int {
	return d.value.Compare(other.value)
}

// Add adds two durations.
func (d Duration) Add(other Duration) (Duration, error) {
	sum, ok := d.value.Add(other.value)
	if !ok {
		return Duration{}, ErrDurationOverflow
	}
	return Duration{value: sum}, nil
}

// Multiply multiplies the duration by a factor.
func (d Duration) Multiply(factor uint64) (Duration, error) {
	secHi, secLo := bits.Mul64(d.value.Seconds(), factor)
	nsHi, nsLo := bits.Mul64(uint64(d.value.Subsec()), factor)
	if secHi != 0 {
		return Duration{}, ErrDurationOverflow
	}
	// nanos*factor < 1e9 * 2^64, so the carry into seconds is hi:lo / 1e9.
	carry, rem := bits.Div64(nsHi, nsLo, 1_000_000_000)
	secs, c := bits.Add64(secLo, carry, 0)
	if c != 0 {
		return Duration{}, ErrDurationOverflow
	}
	return Duration{value: duration.New(secs, uint32(rem))}, nil
}
