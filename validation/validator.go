package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/auth-platform/libs/go/humantime/domain"
	"github.com/auth-platform/libs/go/humantime/duration"
	"github.com/auth-platform/libs/go/humantime/timestamp"
	"github.com/go-playground/validator/v10"
)

// Struct tags registered by NewValidator.
const (
	// TagDuration: string field holding valid duration text.
	TagDuration = "hduration"
	// TagTimestamp: string field holding a strict RFC 3339 UTC timestamp.
	TagTimestamp = "htimestamp"
	// TagDurationMin: duration field (or duration text) at least the
	// parameter, e.g. `validate:"hduration_min=1s"`.
	TagDurationMin = "hduration_min"
	// TagDurationMax: duration field (or duration text) at most the parameter.
	TagDurationMax = "hduration_max"
)

// NewValidator returns a go-playground validator that understands the
// humantime tags and validates domain.Duration and domain.Timestamp fields
// as time.Duration and time.Time, so built-in tags such as
// `validate:"required,min=1s"` apply to them. Durations longer than
// time.Duration can hold compare as the largest time.Duration. A zero
// Timestamp (the epoch) is presented as the zero time.Time and so fails
// `required`.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		switch val := field.Interface().(type) {
		case domain.Duration:
			return val.Value()
		case domain.Timestamp:
			if val.IsZero() {
				return time.Time{}
			}
			return val.Time()
		}
		return nil
	}, domain.Duration{}, domain.Timestamp{})

	// Registration only fails for an empty tag or nil function.
	_ = v.RegisterValidation(TagDuration, func(fl validator.FieldLevel) bool {
		_, err := duration.Parse(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation(TagTimestamp, func(fl validator.FieldLevel) bool {
		_, err := timestamp.ParseStrict(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation(TagDurationMin, func(fl validator.FieldLevel) bool {
		cmp, ok := compareParam(fl)
		return ok && cmp >= 0
	})
	_ = v.RegisterValidation(TagDurationMax, func(fl validator.FieldLevel) bool {
		cmp, ok := compareParam(fl)
		return ok && cmp <= 0
	})

	return v
}

// compareParam compares the field with the tag parameter, both read as
// durations. ok is false when either cannot be read.
func compareParam(fl validator.FieldLevel) (int, bool) {
	limit, err := duration.Parse(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("validation: bad %s parameter %q: %v", fl.GetTag(), fl.Param(), err))
	}

	field := fl.Field()
	var value duration.Elapsed
	switch {
	case field.Type() == reflect.TypeOf(time.Duration(0)):
		e, ok := duration.FromStd(time.Duration(field.Int()))
		if !ok {
			return 0, false
		}
		value = e
	case field.Kind() == reflect.String:
		e, err := duration.Parse(field.String())
		if err != nil {
			return 0, false
		}
		value = e
	default:
		return 0, false
	}
	return value.Compare(limit), true
}

// FormatError renders go-playground validation errors the way the service
// configs report them.
func FormatError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s (value: %v)",
			fieldError.Namespace(), fieldError.Tag(), fieldError.Value()))
	}
	return fmt.Errorf("validation errors: %s", strings.Join(messages, "; "))
}
