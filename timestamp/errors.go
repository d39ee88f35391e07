package timestamp

import (
	"errors"
	"fmt"
)

// ErrorKind classifies timestamp parse and format failures.
type ErrorKind int

const (
	// InvalidFormat means the text does not follow the grammar: a literal is
	// missing or a numeric field has the wrong number of digits.
	InvalidFormat ErrorKind = iota + 1
	// InvalidDigit means a non-digit byte was found inside a numeric field.
	InvalidDigit
	// FieldOutOfRange means a field parsed but its value is not valid, such
	// as month 13 or February 30.
	FieldOutOfRange
	// OutOfRange means the instant cannot be rendered with a four-digit year.
	OutOfRange
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidFormat:
		return "invalid_format"
	case InvalidDigit:
		return "invalid_digit"
	case FieldOutOfRange:
		return "field_out_of_range"
	case OutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// Error describes a timestamp failure. Offset is a byte offset into the
// input, or -1 when the error is not tied to input text. Field names the
// offending field ("month", "precision") or, for InvalidFormat, what was
// expected ("'T'", "year").
type Error struct {
	Kind   ErrorKind
	Offset int
	Field  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case InvalidFormat:
		return fmt.Sprintf("timestamp: invalid format at %d, expected %s", e.Offset, e.Field)
	case InvalidDigit:
		return fmt.Sprintf("timestamp: bad character where digit is expected at %d", e.Offset)
	case FieldOutOfRange:
		if e.Offset < 0 {
			return fmt.Sprintf("timestamp: %s is out of range", e.Field)
		}
		return fmt.Sprintf("timestamp: %s is out of range at %d", e.Field, e.Offset)
	case OutOfRange:
		return "timestamp: value is out of range for year 0000-9999"
	default:
		return fmt.Sprintf("timestamp: %s at %d", e.Kind, e.Offset)
	}
}

// Is matches any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrInvalidFormat   = &Error{Kind: InvalidFormat}
	ErrInvalidDigit    = &Error{Kind: InvalidDigit}
	ErrFieldOutOfRange = &Error{Kind: FieldOutOfRange}
	ErrOutOfRange      = &Error{Kind: OutOfRange}
)

// FieldOf returns the field name carried by err, or "" when err is not a
// timestamp error.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// IsOutOfRange checks if the error is an out of range error.
func IsOutOfRange(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == OutOfRange
	}
	return false
}
