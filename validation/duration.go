package validation

import (
	"errors"
	"fmt"

	"github.com/auth-platform/libs/go/humantime/domain"
	"github.com/auth-platform/libs/go/humantime/duration"
	"github.com/auth-platform/libs/go/humantime/timestamp"
)

// DurationRange checks duration is within range.
func DurationRange(min, max domain.Duration) Validator[domain.Duration] {
	return func(d domain.Duration) *ValidationError {
		if d.Compare(min) < 0 || d.Compare(max) > 0 {
			return &ValidationError{
				Message: fmt.Sprintf("must be between %v and %v", min, max),
				Code:    "duration_range",
				Value:   d.String(),
			}
		}
		return nil
	}
}

// DurationMin checks minimum duration.
func DurationMin(min domain.Duration) Validator[domain.Duration] {
	return func(d domain.Duration) *ValidationError {
		if d.Compare(min) < 0 {
			return &ValidationError{
				Message: fmt.Sprintf("must be at least %v", min),
				Code:    "duration_min",
				Value:   d.String(),
			}
		}
		return nil
	}
}

// DurationMax checks maximum duration.
func DurationMax(max domain.Duration) Validator[domain.Duration] {
	return func(d domain.Duration) *ValidationError {
		if d.Compare(max) > 0 {
			return &ValidationError{
				Message: fmt.Sprintf("must be at most %v", max),
				Code:    "duration_max",
				Value:   d.String(),
			}
		}
		return nil
	}
}

// DurationNonZero checks duration is not zero.
func DurationNonZero() Validator[domain.Duration] {
	return func(d domain.Duration) *ValidationError {
		if d.IsZero() {
			return &ValidationError{
				Message: "must not be zero",
				Code:    "duration_non_zero",
			}
		}
		return nil
	}
}

// TimestampBefore checks the timestamp is strictly before limit.
func TimestampBefore(limit domain.Timestamp) Validator[domain.Timestamp] {
	return func(t domain.Timestamp) *ValidationError {
		if !t.Before(limit) {
			return &ValidationError{
				Message: fmt.Sprintf("must be before %v", limit),
				Code:    "timestamp_before",
				Value:   t.String(),
			}
		}
		return nil
	}
}

// TimestampAfter checks the timestamp is strictly after limit.
func TimestampAfter(limit domain.Timestamp) Validator[domain.Timestamp] {
	return func(t domain.Timestamp) *ValidationError {
		if !t.After(limit) {
			return &ValidationError{
				Message: fmt.Sprintf("must be after %v", limit),
				Code:    "timestamp_after",
				Value:   t.String(),
			}
		}
		return nil
	}
}

// TimestampBetween checks the timestamp is within [from, to].
func TimestampBetween(from, to domain.Timestamp) Validator[domain.Timestamp] {
	return func(t domain.Timestamp) *ValidationError {
		if t.Before(from) || t.After(to) {
			return &ValidationError{
				Message: fmt.Sprintf("must be between %v and %v", from, to),
				Code:    "timestamp_range",
				Value:   t.String(),
			}
		}
		return nil
	}
}

// DurationText checks a string is valid duration text. The message carries
// the parser's offset so callers can point at the bad input.
func DurationText() Validator[string] {
	return func(s string) *ValidationError {
		_, err := duration.Parse(s)
		if err == nil {
			return nil
		}
		var perr *duration.Error
		code := "duration_syntax"
		if errors.As(err, &perr) {
			code = "duration_" + perr.Kind.String()
		}
		return &ValidationError{Message: err.Error(), Code: code, Value: s}
	}
}

// TimestampText checks a string is a strict RFC 3339 UTC timestamp.
func TimestampText() Validator[string] {
	return func(s string) *ValidationError {
		_, err := timestamp.ParseStrict(s)
		if err == nil {
			return nil
		}
		var perr *timestamp.Error
		code := "timestamp_syntax"
		if errors.As(err, &perr) {
			code = "timestamp_" + perr.Kind.String()
		}
		return &ValidationError{Message: err.Error(), Code: code, Value: s}
	}
}
