package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/auth-platform/libs/go/humantime/timestamp"
)

// ErrTimestampOverflow is returned when timestamp arithmetic leaves the
// representable range.
var ErrTimestampOverflow = errors.New("timestamp overflow")

// Timestamp represents a validated UTC timestamp with RFC 3339 support.
type Timestamp struct {
	value timestamp.Instant
}

// Now returns the current timestamp.
func Now() Timestamp {
	return Timestamp{value: timestamp.FromTime(time.Now())}
}

// NewTimestamp creates a Timestamp from a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{value: timestamp.FromTime(t)}
}

// FromInstant creates a Timestamp from a codec value.
func FromInstant(i timestamp.Instant) Timestamp {
	return Timestamp{value: i}
}

// ParseTimestamp parses a strict RFC 3339 UTC timestamp such as
// "2018-02-14T00:28:07Z".
func ParseTimestamp(value string) (Timestamp, error) {
	i, err := timestamp.ParseStrict(value)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return Timestamp{value: i}, nil
}

// ParseTimestampWeak parses typed input such as "2018-02-14 00:28:07",
// accepting a space separator and a missing Z. Use it for interactive
// input only.
func ParseTimestampWeak(value string) (Timestamp, error) {
	i, err := timestamp.ParseWeak(value)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return Timestamp{value: i}, nil
}

// MustParseTimestamp parses a timestamp, panicking on invalid input.
func MustParseTimestamp(value string) Timestamp {
	ts, err := ParseTimestamp(value)
	if err != nil {
		panic(err)
	}
	return ts
}

// FromUnix creates a Timestamp from Unix seconds.
func FromUnix(sec int64) Timestamp {
	return Timestamp{value: timestamp.Unix(sec, 0)}
}

// FromUnixMilli creates a Timestamp from Unix milliseconds.
func FromUnixMilli(ms int64) Timestamp {
	return Timestamp{value: timestamp.Unix(ms/1_000, ms%1_000*1_000_000)}
}

// Instant returns the underlying codec value.
func (t Timestamp) Instant() timestamp.Instant {
	return t.value
}

// Time returns the timestamp as a UTC time.Time.
func (t Timestamp) Time() time.Time {
	return t.value.Time()
}

// Unix returns the Unix timestamp in seconds.
func (t Timestamp) Unix() int64 {
	return t.value.Unix()
}

// UnixMilli returns the Unix timestamp in milliseconds.
func (t Timestamp) UnixMilli() int64 {
	return t.value.Unix()*1_000 + int64(t.value.Nanosecond()/1_000_000)
}

// String returns the timestamp in RFC 3339 format with the shortest exact
// fraction.
func (t Timestamp) String() string {
	return t.value.String()
}

// Format returns the timestamp with exactly precision fractional digits, or
// the shortest exact fraction for timestamp.AutoPrecision.
func (t Timestamp) Format(precision int) (string, error) {
	return timestamp.FormatPrecision(t.value, precision)
}

// IsZero returns true if the timestamp is the zero value, the Unix epoch.
func (t Timestamp) IsZero() bool {
	return t.value == timestamp.Instant{}
}

// Before returns true if t is before other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.value.Compare(other.value) < 0
}

// After returns true if t is after other.
func (t Timestamp) After(other Timestamp) bool {
	return t.value.Compare(other.value) > 0
}

// Equals checks if two timestamps are equal.
func (t Timestamp) Equals(other Timestamp) bool {
	return t.value.Equal(other.value)
}

// Add adds a duration to the timestamp.
func (t Timestamp) Add(d Duration) (Timestamp, error) {
	v, ok := t.value.Add(d.value)
	if !ok {
		return Timestamp{}, ErrTimestampOverflow
	}
	return Timestamp{value: v}, nil
}

// SubDuration subtracts a duration from the timestamp.
func (t Timestamp) SubDuration(d Duration) (Timestamp, error) {
	v, ok := t.value.Sub(d.value)
	if !ok {
		return Timestamp{}, ErrTimestampOverflow
	}
	return Timestamp{value: v}, nil
}

// Since returns the duration from earlier to t. It fails when earlier is
// after t, since durations are never negative.
func (t Timestamp) Since(earlier Timestamp) (Duration, error) {
	e, ok := t.value.Since(earlier.value)
	if !ok {
		return Duration{}, fmt.Errorf("timestamp %s is after %s", earlier, t)
	}
	return Duration{value: e}, nil
}
