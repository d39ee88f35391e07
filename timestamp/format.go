package timestamp

import (
	"github.com/auth-platform/libs/go/humantime/internal/calendar"
)

// AutoPrecision asks AppendFormat for the shortest exact fraction: none when
// the nanoseconds are zero, otherwise up to 9 digits with trailing zeros
// trimmed.
const AutoPrecision = -1

const maxFormatLen = len("2006-01-02T15:04:05.999999999Z")

// Format renders v as RFC 3339 UTC text with automatic precision.
func Format(v Instant) (string, error) {
	return FormatPrecision(v, AutoPrecision)
}

// FormatPrecision renders v with exactly digits fractional digits (0-9), or
// with automatic precision when digits is AutoPrecision. Extra nanosecond
// digits are truncated, not rounded.
func FormatPrecision(v Instant, digits int) (string, error) {
	var buf [maxFormatLen]byte
	b, err := AppendFormat(buf[:0], v, digits)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FormatSeconds renders v without a fraction.
func FormatSeconds(v Instant) (string, error) { return FormatPrecision(v, 0) }

// FormatMillis renders v with millisecond precision.
func FormatMillis(v Instant) (string, error) { return FormatPrecision(v, 3) }

// FormatMicros renders v with microsecond precision.
func FormatMicros(v Instant) (string, error) { return FormatPrecision(v, 6) }

// FormatNanos renders v with nanosecond precision.
func FormatNanos(v Instant) (string, error) { return FormatPrecision(v, 9) }

// AppendFormat appends the text form of v to dst. It fails with
// FieldOutOfRange for a precision outside AutoPrecision..9 and with
// OutOfRange when the year of v is outside 0000-9999.
func AppendFormat(dst []byte, v Instant, digits int) ([]byte, error) {
	if digits < AutoPrecision || digits > 9 {
		return dst, &Error{Kind: FieldOutOfRange, Offset: -1, Field: "precision"}
	}

	days, secs := calendar.FloorDivMod(v.sec, 86_400)
	year, month, day := calendar.CivilFromDays(days)
	if year < 0 || year > 9999 {
		return dst, &Error{Kind: OutOfRange, Offset: -1}
	}

	var buf [maxFormatLen]byte
	putDigits(buf[0:4], int(year))
	buf[4] = '-'
	putDigits(buf[5:7], month)
	buf[7] = '-'
	putDigits(buf[8:10], day)
	buf[10] = 'T'
	putDigits(buf[11:13], int(secs/3_600))
	buf[13] = ':'
	putDigits(buf[14:16], int(secs/60%60))
	buf[16] = ':'
	putDigits(buf[17:19], int(secs%60))
	n := 19

	if digits == AutoPrecision {
		digits = 0
		if v.nsec != 0 {
			digits = 9
			for x := v.nsec; x%10 == 0; x /= 10 {
				digits--
			}
		}
	}
	if digits > 0 {
		buf[n] = '.'
		var frac [9]byte
		putDigits(frac[:], int(v.nsec))
		n += 1 + copy(buf[n+1:], frac[:digits])
	}
	buf[n] = 'Z'
	n++

	return append(dst, buf[:n]...), nil
}

// putDigits writes v zero-padded into b, filling it from the right.
func putDigits(b []byte, v int) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte('0' + v%10)
		v /= 10
	}
}
