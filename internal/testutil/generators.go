// Package testutil provides rapid generators for property-based tests of the
// duration and timestamp codecs.
package testutil

import (
	"fmt"
	"strings"

	"github.com/auth-platform/libs/go/humantime/duration"
	"github.com/auth-platform/libs/go/humantime/internal/calendar"
	"github.com/auth-platform/libs/go/humantime/timestamp"
	"pgregory.net/rapid"
)

// Instant bounds covering years 0000 through 9999, the range the timestamp
// formatter renders.
const (
	MinRenderableUnix int64 = -62167219200
	MaxRenderableUnix int64 = 253402300799
)

// ElapsedGen generates Elapsed values over the full seconds range, biased
// towards small values by rapid's integer shrinking.
func ElapsedGen() *rapid.Generator[duration.Elapsed] {
	return rapid.Custom(func(t *rapid.T) duration.Elapsed {
		secs := rapid.Uint64().Draw(t, "secs")
		nanos := rapid.Uint32Range(0, 999_999_999).Draw(t, "nanos")
		return duration.New(secs, nanos)
	})
}

// SecondsGen generates whole-second Elapsed values up to max seconds.
func SecondsGen(max uint64) *rapid.Generator[duration.Elapsed] {
	return rapid.Custom(func(t *rapid.T) duration.Elapsed {
		return duration.New(rapid.Uint64Range(0, max).Draw(t, "secs"), 0)
	})
}

// InstantGen generates instants between 0000-01-01 and 9999-12-31 inclusive.
func InstantGen() *rapid.Generator[timestamp.Instant] {
	return rapid.Custom(func(t *rapid.T) timestamp.Instant {
		sec := rapid.Int64Range(MinRenderableUnix, MaxRenderableUnix).Draw(t, "sec")
		nsec := rapid.Int64Range(0, 999_999_999).Draw(t, "nsec")
		return timestamp.Unix(sec, nsec)
	})
}

// CivilDateGen generates valid calendar dates in the four-digit year range.
func CivilDateGen() *rapid.Generator[calendar.Date] {
	return rapid.Custom(func(t *rapid.T) calendar.Date {
		y := rapid.Int64Range(0, 9999).Draw(t, "year")
		m := rapid.IntRange(1, 12).Draw(t, "month")
		d := rapid.IntRange(1, calendar.DaysIn(m, y)).Draw(t, "day")
		return calendar.Date{Year: y, Month: m, Day: d}
	})
}

// DurationTextGen generates parseable duration text using random spellings,
// random whitespace and random unit order. It returns the text and the
// number of nanoseconds it denotes; magnitudes are kept small enough that
// the sum fits in a uint64 of nanoseconds.
func DurationTextGen() *rapid.Generator[DurationText] {
	units := duration.Units()
	return rapid.Custom(func(t *rapid.T) DurationText {
		n := rapid.IntRange(1, 6).Draw(t, "pairs")
		var b strings.Builder
		var secs uint64
		var nanos uint64
		for i := 0; i < n; i++ {
			u := units[rapid.IntRange(0, len(units)-1).Draw(t, "unit")]
			spelling := rapid.SampledFrom(u.Spellings).Draw(t, "spelling")
			count := rapid.Uint64Range(0, 10_000).Draw(t, "count")
			b.WriteString(rapid.SampledFrom([]string{"", " ", "  ", "\t"}).Draw(t, "sep"))
			fmt.Fprintf(&b, "%d%s", count, spelling)
			secs += count * u.Seconds
			nanos += count * uint64(u.Nanos)
		}
		b.WriteString(rapid.SampledFrom([]string{"", " ", "\n"}).Draw(t, "trailing"))
		return DurationText{
			Text: b.String(),
			Want: duration.New(secs+nanos/1_000_000_000, uint32(nanos%1_000_000_000)),
		}
	})
}

// DurationText is a generated duration string and its expected value.
type DurationText struct {
	Text string
	Want duration.Elapsed
}

// TimestampTextGen generates strict RFC 3339 UTC text with 0-9 fraction
// digits.
func TimestampTextGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		d := CivilDateGen().Draw(t, "date")
		hh := rapid.IntRange(0, 23).Draw(t, "hour")
		mm := rapid.IntRange(0, 59).Draw(t, "minute")
		ss := rapid.IntRange(0, 59).Draw(t, "second")
		s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", d.Year, d.Month, d.Day, hh, mm, ss)
		if digits := rapid.IntRange(0, 9).Draw(t, "digits"); digits > 0 {
			s += "." + rapid.StringMatching(fmt.Sprintf("[0-9]{%d}", digits)).Draw(t, "fraction")
		}
		return s + "Z"
	})
}
