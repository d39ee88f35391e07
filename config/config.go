// Package config loads configuration that carries human-readable durations
// and timestamps. Config is a small map-backed loader for files and prefixed
// environment variables; Unmarshal and ReadEnv/ReadFile adapt viper and
// cleanenv struct configs to the humantime domain types.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/auth-platform/libs/go/humantime/domain"
	"github.com/auth-platform/libs/go/humantime/validation"
	"gopkg.in/yaml.v3"
)

// Config holds configuration values under dotted keys such as
// "retry.timeout".
type Config struct {
	values   map[string]any
	defaults map[string]any
	logger   *slog.Logger
}

// New creates a new empty Config.
func New() *Config {
	return &Config{
		values:   make(map[string]any),
		defaults: make(map[string]any),
		logger:   slog.New(slog.DiscardHandler),
	}
}

// WithDefaults sets default values. Nested maps are flattened to dotted keys.
func (c *Config) WithDefaults(defaults map[string]any) *Config {
	flatten("", defaults, c.defaults)
	return c
}

// WithLogger sets the logger used for load and conversion diagnostics.
func (c *Config) WithLogger(logger *slog.Logger) *Config {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// LoadFile loads configuration from a JSON or YAML file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var values map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	before := len(c.values)
	flatten("", values, c.values)
	c.logger.Debug("config file loaded", "path", path, "keys", len(c.values)-before)
	return nil
}

// LoadEnv loads environment variables with the given prefix. APP_RETRY_TIMEOUT
// with prefix "APP" becomes "retry.timeout".
func (c *Config) LoadEnv(prefix string) *Config {
	loaded := 0
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if prefix != "" {
			if !strings.HasPrefix(key, prefix+"_") {
				continue
			}
			key = strings.TrimPrefix(key, prefix+"_")
		}
		c.values[strings.ToLower(strings.ReplaceAll(key, "_", "."))] = value
		loaded++
	}
	c.logger.Debug("config env loaded", "prefix", prefix, "keys", loaded)
	return c
}

// Set sets a configuration value.
func (c *Config) Set(key string, value any) {
	c.values[key] = value
}

// Get returns a configuration value.
func (c *Config) Get(key string) (any, bool) {
	if v, ok := c.values[key]; ok {
		return v, true
	}
	if v, ok := c.defaults[key]; ok {
		return v, true
	}
	return nil, false
}

// GetString returns a string configuration value.
func (c *Config) GetString(key string) string {
	v, ok := c.Get(key)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// GetInt returns an int configuration value.
func (c *Config) GetInt(key string) int {
	v, ok := c.Get(key)
	if !ok {
		return 0
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case uint64:
		return int(val)
	case float64:
		return int(val)
	case string:
		i, err := strconv.Atoi(val)
		if err != nil {
			c.logger.Warn("config value is not an integer", "key", key, "value", val)
		}
		return i
	}
	return 0
}

// GetBool returns a bool configuration value.
func (c *Config) GetBool(key string) bool {
	v, ok := c.Get(key)
	if !ok {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true" || val == "1" || val == "yes"
	}
	return false
}

// LookupDuration returns the duration stored under key. Strings are parsed
// as duration text ("1h 30m"); whole numbers are seconds. A value failing any
// of rules is reported as an error wrapping the validation failures.
func (c *Config) LookupDuration(key string, rules ...validation.Validator[domain.Duration]) (domain.Duration, bool, error) {
	v, ok := c.Get(key)
	if !ok {
		return domain.Duration{}, false, nil
	}
	d, err := toDuration(v)
	if err == nil {
		err = validation.Field(key, d, rules...).Err()
	}
	if err != nil {
		return domain.Duration{}, true, fmt.Errorf("config key %q: %w", key, err)
	}
	return d, true, nil
}

// GetDuration returns the duration stored under key, or zero when it is
// missing, malformed or rejected by rules. Bad values are logged.
func (c *Config) GetDuration(key string, rules ...validation.Validator[domain.Duration]) domain.Duration {
	d, _, err := c.LookupDuration(key, rules...)
	if err != nil {
		c.logger.Warn("invalid duration in config", "key", key, "error", err)
	}
	return d
}

// LookupTimestamp returns the timestamp stored under key. Strings must be
// strict RFC 3339 UTC text. rules apply as for LookupDuration.
func (c *Config) LookupTimestamp(key string, rules ...validation.Validator[domain.Timestamp]) (domain.Timestamp, bool, error) {
	v, ok := c.Get(key)
	if !ok {
		return domain.Timestamp{}, false, nil
	}
	t, err := toTimestamp(v)
	if err == nil {
		err = validation.Field(key, t, rules...).Err()
	}
	if err != nil {
		return domain.Timestamp{}, true, fmt.Errorf("config key %q: %w", key, err)
	}
	return t, true, nil
}

// GetTimestamp returns the timestamp stored under key, or the zero value
// when it is missing, malformed or rejected by rules. Bad values are logged.
func (c *Config) GetTimestamp(key string, rules ...validation.Validator[domain.Timestamp]) domain.Timestamp {
	t, _, err := c.LookupTimestamp(key, rules...)
	if err != nil {
		c.logger.Warn("invalid timestamp in config", "key", key, "error", err)
	}
	return t
}

// Validate checks that required keys are present.
func (c *Config) Validate(required ...string) error {
	var missing []string
	for _, key := range required {
		if _, ok := c.Get(key); !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{MissingKeys: missing}
	}
	return nil
}

// ValidationError lists required keys that were not found.
type ValidationError struct {
	MissingKeys []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required config keys: %s", strings.Join(e.MissingKeys, ", "))
}

// All returns all configuration values.
func (c *Config) All() map[string]any {
	result := make(map[string]any, len(c.defaults)+len(c.values))
	for k, v := range c.defaults {
		result[k] = v
	}
	for k, v := range c.values {
		result[k] = v
	}
	return result
}

// Keys returns every known key in sorted order.
func (c *Config) Keys() []string {
	all := c.All()
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func flatten(prefix string, src map[string]any, dst map[string]any) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, dst)
			continue
		}
		dst[key] = v
	}
}
