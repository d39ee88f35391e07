package duration

import (
	"errors"
	"fmt"
)

// ErrorKind classifies duration parse failures.
type ErrorKind int

const (
	// NumberExpected means a digit was required but something else (or
	// nothing) was found.
	NumberExpected ErrorKind = iota + 1
	// UnknownUnit means the unit token after a number is not in the unit table.
	UnknownUnit
	// NumberOverflow means a literal or the running total does not fit in
	// 64-bit seconds plus nanoseconds.
	NumberOverflow
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case NumberExpected:
		return "number_expected"
	case UnknownUnit:
		return "unknown_unit"
	case NumberOverflow:
		return "number_overflow"
	default:
		return "unknown"
	}
}

// Error is returned by Parse. Offset is a byte offset into the input; Token
// holds the offending unit text for UnknownUnit.
type Error struct {
	Kind   ErrorKind
	Offset int
	Token  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case NumberExpected:
		return fmt.Sprintf("duration: expected number at %d", e.Offset)
	case UnknownUnit:
		if e.Token == "" {
			return fmt.Sprintf("duration: time unit needed at %d, for example 10sec or 10ms", e.Offset)
		}
		return fmt.Sprintf("duration: unknown time unit %q at %d, supported units: "+
			"ns, us, ms, sec, min, hours, days, weeks, months, years (and few variations)", e.Token, e.Offset)
	case NumberOverflow:
		return fmt.Sprintf("duration: number is too large at %d", e.Offset)
	default:
		return fmt.Sprintf("duration: %s at %d", e.Kind, e.Offset)
	}
}

// Is matches any *Error with the same Kind, so the sentinels below work
// with errors.Is regardless of offset or token.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrNumberExpected = &Error{Kind: NumberExpected}
	ErrUnknownUnit    = &Error{Kind: UnknownUnit}
	ErrNumberOverflow = &Error{Kind: NumberOverflow}
)

// IsUnknownUnit checks if the error is an unknown unit error.
func IsUnknownUnit(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == UnknownUnit
	}
	return false
}

// IsOverflow checks if the error is a number overflow error.
func IsOverflow(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == NumberOverflow
	}
	return false
}
