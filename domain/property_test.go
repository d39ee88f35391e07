package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/auth-platform/libs/go/humantime/domain"
	"github.com/auth-platform/libs/go/humantime/internal/testutil"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

// Property 1: Timestamp JSON Round-Trip
func TestTimestampJSONRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := domain.FromInstant(testutil.InstantGen().Draw(t, "instant"))

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		var restored domain.Timestamp
		if err := json.Unmarshal(data, &restored); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}

		if !original.Equals(restored) {
			t.Fatalf("round-trip failed: %v != %v", original, restored)
		}
	})
}

// Property 2: Duration Parsing Consistency
func TestDurationParsingConsistency(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := testutil.DurationTextGen().Draw(t, "input")

		parsed, err := domain.ParseDuration(input.Text)
		if err != nil {
			t.Fatalf("valid duration should parse: %q, error: %v", input.Text, err)
		}

		if parsed.Elapsed() != input.Want {
			t.Fatalf("ParseDuration(%q) = %v, want %v", input.Text, parsed, input.Want)
		}
	})
}

// Property 3: Duration JSON Round-Trip
func TestDurationJSONRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := domain.FromElapsed(testutil.ElapsedGen().Draw(t, "elapsed"))

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		var restored domain.Duration
		if err := json.Unmarshal(data, &restored); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}

		if !original.Equals(restored) {
			t.Fatalf("round-trip failed: %v != %v", original, restored)
		}
	})
}

// Property 4: YAML Round-Trip
func TestYAMLRoundTrip(t *testing.T) {
	type record struct {
		Every domain.Duration  `yaml:"every"`
		At    domain.Timestamp `yaml:"at"`
	}

	rapid.Check(t, func(t *rapid.T) {
		original := record{
			Every: domain.FromElapsed(testutil.ElapsedGen().Draw(t, "elapsed")),
			At:    domain.FromInstant(testutil.InstantGen().Draw(t, "instant")),
		}

		data, err := yaml.Marshal(original)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		var restored record
		if err := yaml.Unmarshal(data, &restored); err != nil {
			t.Fatalf("unmarshal of %q failed: %v", data, err)
		}

		if !original.Every.Equals(restored.Every) || !original.At.Equals(restored.At) {
			t.Fatalf("round-trip failed: %+v != %+v", original, restored)
		}
	})
}

// Property 5: Add and SubDuration are inverse
func TestTimestampAddSubInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := domain.FromInstant(testutil.InstantGen().Draw(t, "instant"))
		step := domain.FromElapsed(testutil.SecondsGen(1 << 32).Draw(t, "step"))

		end, err := start.Add(step)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		back, err := end.SubDuration(step)
		if err != nil {
			t.Fatalf("SubDuration failed: %v", err)
		}
		if !back.Equals(start) {
			t.Fatalf("%v + %v - %v = %v", start, step, step, back)
		}

		since, err := end.Since(start)
		if err != nil {
			t.Fatalf("Since failed: %v", err)
		}
		if !since.Equals(step) {
			t.Fatalf("Since = %v, want %v", since, step)
		}
	})
}
