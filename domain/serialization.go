package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/auth-platform/libs/go/humantime/timestamp"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler for Duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Duration.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler for Duration.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler for Duration. Besides the text
// form it accepts a bare non-negative integer as seconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] != '"' {
		secs, err := strconv.ParseUint(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid duration %s: want a string or whole seconds", data)
		}
		*d = Seconds(secs)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Duration. An integer node
// is read as seconds.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!int" {
		var secs uint64
		if err := node.Decode(&secs); err != nil {
			return fmt.Errorf("invalid duration %s: %w", node.Value, err)
		}
		*d = Seconds(secs)
		return nil
	}
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(str))
}

// Set implements flag.Value for Duration.
func (d *Duration) Set(value string) error {
	return d.UnmarshalText([]byte(value))
}

// Type names the flag value type for pflag-style flag sets.
func (d *Duration) Type() string {
	return "duration"
}

// SetValue implements cleanenv.Setter for Duration.
func (d *Duration) SetValue(value string) error {
	return d.UnmarshalText([]byte(value))
}

// MarshalText implements encoding.TextMarshaler for Timestamp. Timestamps
// outside years 0000-9999 cannot be encoded.
func (t Timestamp) MarshalText() ([]byte, error) {
	s, err := t.Format(timestamp.AutoPrecision)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Timestamp using the
// strict grammar.
func (t *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON implements json.Marshaler for Timestamp.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	text, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler for Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler for Timestamp.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	text, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Timestamp.
func (t *Timestamp) UnmarshalYAML(node *yaml.Node) error {
	// Use the raw scalar: yaml resolves unquoted dates as !!timestamp.
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid timestamp: expected a scalar, got %s", node.Tag)
	}
	return t.UnmarshalText([]byte(node.Value))
}

// Set implements flag.Value for Timestamp. Command-line input is parsed
// with the weak grammar, so "2018-02-14 00:28:07" is accepted.
func (t *Timestamp) Set(value string) error {
	parsed, err := ParseTimestampWeak(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Type names the flag value type for pflag-style flag sets.
func (t *Timestamp) Type() string {
	return "timestamp"
}

// SetValue implements cleanenv.Setter for Timestamp.
func (t *Timestamp) SetValue(value string) error {
	return t.UnmarshalText([]byte(value))
}
