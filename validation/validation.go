// Package validation checks duration and timestamp values against rules.
//
// Rules are plain functions (Validator) that can be combined with And, Or
// and Not, and applied to a named value with Field, which collects every
// failure into a Result. NewValidator exposes the same checks as
// go-playground struct tags.
package validation

import (
	"cmp"
	"errors"
	"strings"
)

// ValidationError describes one failed rule.
type ValidationError struct {
	Field   string `json:"field"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Value   any    `json:"value,omitempty"`
}

// Error reports the path, or the field when no path is set, and the message.
func (e ValidationError) Error() string {
	return cmp.Or(e.Path, e.Field) + ": " + e.Message
}

// Result accumulates failures across rules and fields.
type Result struct {
	failures []ValidationError
}

func NewResult() *Result { return &Result{} }

// AddError records err and returns r for chaining.
func (r *Result) AddError(err ValidationError) *Result {
	r.failures = append(r.failures, err)
	return r
}

// Merge appends the failures of other, which may be nil.
func (r *Result) Merge(other *Result) *Result {
	if other == nil {
		return r
	}
	return r.append(other.failures...)
}

func (r *Result) append(errs ...ValidationError) *Result {
	r.failures = append(r.failures, errs...)
	return r
}

func (r *Result) IsValid() bool { return len(r.failures) == 0 }

// Errors returns the recorded failures in the order they were added.
func (r *Result) Errors() []ValidationError { return r.failures }

func (r *Result) ErrorMessages() []string {
	var msgs []string
	for _, f := range r.failures {
		msgs = append(msgs, f.Error())
	}
	return msgs
}

// Err returns nil for a valid result. Otherwise the error message joins
// every failure and each ValidationError stays reachable with errors.As.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	joined := &resultError{causes: make([]error, 0, len(r.failures))}
	for _, f := range r.failures {
		joined.causes = append(joined.causes, f)
	}
	return joined
}

type resultError struct {
	causes []error
}

func (e *resultError) Error() string {
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, c := range e.causes {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(c.Error())
	}
	return b.String()
}

func (e *resultError) Unwrap() []error { return e.causes }

// Validator checks one value and returns nil when it passes.
type Validator[T any] func(T) *ValidationError

// And passes only when every rule passes and reports the first failure.
func And[T any](rules ...Validator[T]) Validator[T] {
	return func(v T) *ValidationError {
		for _, rule := range rules {
			if failure := rule(v); failure != nil {
				return failure
			}
		}
		return nil
	}
}

// Or passes when any rule passes. When all fail it reports the last failure.
func Or[T any](rules ...Validator[T]) Validator[T] {
	return func(v T) *ValidationError {
		var failure *ValidationError
		for _, rule := range rules {
			if failure = rule(v); failure == nil {
				return nil
			}
		}
		return failure
	}
}

// Not fails with message and code when rule passes.
func Not[T any](rule Validator[T], message, code string) Validator[T] {
	return func(v T) *ValidationError {
		if rule(v) != nil {
			return nil
		}
		return &ValidationError{Message: message, Code: code}
	}
}

// Field applies every rule to value and labels each failure with field.
// A path already set by the rule is kept.
func Field[T any](field string, value T, rules ...Validator[T]) *Result {
	result := ValidateAll(value, rules...)
	for i := range result.failures {
		f := &result.failures[i]
		f.Field = field
		f.Path = cmp.Or(f.Path, field)
	}
	return result
}

// ValidateAll applies every rule to value, collecting all failures.
func ValidateAll[T any](value T, rules ...Validator[T]) *Result {
	result := NewResult()
	for _, rule := range rules {
		if failure := rule(value); failure != nil {
			result.append(*failure)
		}
	}
	return result
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
