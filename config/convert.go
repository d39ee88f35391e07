package config

import (
	"fmt"
	"math"
	"time"

	"github.com/auth-platform/libs/go/humantime/domain"
)

// toDuration converts a raw configuration value. Strings are parsed as
// duration text; whole non-negative numbers are seconds.
func toDuration(v any) (domain.Duration, error) {
	switch val := v.(type) {
	case domain.Duration:
		return val, nil
	case string:
		return domain.ParseDuration(val)
	case []byte:
		return domain.ParseDuration(string(val))
	case time.Duration:
		return domain.NewDuration(val)
	case int:
		return secondsOf(int64(val))
	case int64:
		return secondsOf(val)
	case uint:
		return domain.Seconds(uint64(val)), nil
	case uint64:
		return domain.Seconds(val), nil
	case float64:
		if val < 0 || val != math.Trunc(val) || val >= math.MaxUint64 {
			return domain.Duration{}, fmt.Errorf("invalid duration %v: want whole seconds", val)
		}
		return domain.Seconds(uint64(val)), nil
	}
	return domain.Duration{}, fmt.Errorf("invalid duration: unsupported type %T", v)
}

func secondsOf(n int64) (domain.Duration, error) {
	if n < 0 {
		return domain.Duration{}, fmt.Errorf("invalid duration %d: cannot be negative", n)
	}
	return domain.Seconds(uint64(n)), nil
}

// toTimestamp converts a raw configuration value. Strings use the strict
// grammar; YAML decoders already turn unquoted timestamps into time.Time.
func toTimestamp(v any) (domain.Timestamp, error) {
	switch val := v.(type) {
	case domain.Timestamp:
		return val, nil
	case string:
		return domain.ParseTimestamp(val)
	case []byte:
		return domain.ParseTimestamp(string(val))
	case time.Time:
		return domain.NewTimestamp(val), nil
	case int:
		return domain.FromUnix(int64(val)), nil
	case int64:
		return domain.FromUnix(val), nil
	}
	return domain.Timestamp{}, fmt.Errorf("invalid timestamp: unsupported type %T", v)
}
