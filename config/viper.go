package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/auth-platform/libs/go/humantime/domain"
	"github.com/auth-platform/libs/go/humantime/duration"
	"github.com/auth-platform/libs/go/humantime/timestamp"
	"github.com/auth-platform/libs/go/humantime/validation"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

var (
	durationType = reflect.TypeOf(domain.Duration{})
	elapsedType  = reflect.TypeOf(duration.Elapsed{})
	tsType       = reflect.TypeOf(domain.Timestamp{})
	instantType  = reflect.TypeOf(timestamp.Instant{})
)

var structValidator = validation.NewValidator()

// DecodeHook returns a mapstructure hook that decodes duration text into
// domain.Duration and duration.Elapsed fields, and RFC 3339 text into
// domain.Timestamp and timestamp.Instant fields.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.DecodeHookFuncType(func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from == to {
			return data, nil
		}
		switch to {
		case durationType:
			return toDuration(data)
		case elapsedType:
			d, err := toDuration(data)
			if err != nil {
				return nil, err
			}
			return d.Elapsed(), nil
		case tsType:
			return toTimestamp(data)
		case instantType:
			t, err := toTimestamp(data)
			if err != nil {
				return nil, err
			}
			return t.Instant(), nil
		}
		return data, nil
	})
}

// NewViper returns a viper instance reading environment variables with the
// given prefix, where "retry.timeout" maps to PREFIX_RETRY_TIMEOUT.
func NewViper(envPrefix string) *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	if envPrefix != "" {
		v.SetEnvPrefix(envPrefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Unmarshal decodes v into out with the humantime hook composed ahead of
// viper's default time.Duration and slice hooks, then validates out using
// its `validate` struct tags.
func Unmarshal(v *viper.Viper, out any) error {
	hook := mapstructure.ComposeDecodeHookFunc(
		DecodeHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.Unmarshal(out, viper.DecodeHook(hook)); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := structValidator.Struct(out); err != nil {
		return fmt.Errorf("configuration validation failed: %w", validation.FormatError(err))
	}
	return nil
}
