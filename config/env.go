package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/auth-platform/libs/go/humantime/validation"
	"github.com/ilyakaznacheev/cleanenv"
)

// ReadEnv fills out, a pointer to a struct, from environment variables
// named by `env` tags and validates the result with its `validate` tags.
//
// cleanenv treats struct-typed fields as nested sections, so it never sees
// the env tags on domain.Duration and domain.Timestamp fields. ReadEnv
// resolves those fields itself with the same tag rules: the first set
// variable in `env` wins, `env-default` applies to zero fields,
// `env-required` fails when nothing is provided and `env-prefix` on a
// nested struct prefixes its variables.
func ReadEnv(out any) error {
	if err := cleanenv.ReadEnv(out); err != nil {
		return fmt.Errorf("failed to read env config: %w", err)
	}
	return finish(out)
}

// ReadFile is ReadEnv preceded by loading a YAML, JSON or TOML file.
// Environment variables override file values.
func ReadFile(path string, out any) error {
	if err := cleanenv.ReadConfig(path, out); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return finish(out)
}

func finish(out any) error {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config target must be a pointer to a struct, got %T", out)
	}
	if err := readSetterEnv(v.Elem(), ""); err != nil {
		return err
	}
	if err := structValidator.Struct(out); err != nil {
		return fmt.Errorf("configuration validation failed: %w", validation.FormatError(err))
	}
	return nil
}

var setterType = reflect.TypeOf((*cleanenv.Setter)(nil)).Elem()

// readSetterEnv walks s and applies env tags to struct-typed fields that
// implement cleanenv.Setter.
func readSetterEnv(s reflect.Value, prefix string) error {
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		field := t.Field(i)
		fv := s.Field(i)
		if !field.IsExported() || fv.Kind() != reflect.Struct {
			continue
		}
		if !reflect.PointerTo(fv.Type()).Implements(setterType) {
			if err := readSetterEnv(fv, prefix+field.Tag.Get(cleanenv.TagEnvPrefix)); err != nil {
				return err
			}
			continue
		}
		if err := applyEnvTags(field, fv, prefix); err != nil {
			return err
		}
	}
	return nil
}

func applyEnvTags(field reflect.StructField, fv reflect.Value, prefix string) error {
	var names []string
	if envs := field.Tag.Get(cleanenv.TagEnv); envs != "" {
		for _, name := range strings.Split(envs, ",") {
			names = append(names, prefix+name)
		}
	}

	var raw *string
	for _, name := range names {
		if value, ok := os.LookupEnv(name); ok {
			raw = &value
			break
		}
	}

	_, required := field.Tag.Lookup(cleanenv.TagEnvRequired)
	if raw == nil && fv.IsZero() {
		if required {
			return fmt.Errorf("field %q is required but the value is not provided", field.Name)
		}
		if def, ok := field.Tag.Lookup(cleanenv.TagEnvDefault); ok {
			raw = &def
		}
	}
	if raw == nil {
		return nil
	}

	setter := fv.Addr().Interface().(cleanenv.Setter)
	if err := setter.SetValue(*raw); err != nil {
		name := field.Name
		if len(names) > 0 {
			name = names[0]
		}
		return fmt.Errorf("parsing field %s env %s: %w", field.Name, name, err)
	}
	return nil
}
