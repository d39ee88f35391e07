// Package domain provides time value objects for configuration and APIs.
//
// Domain primitives are value objects that encapsulate validation rules
// and ensure that invalid values cannot be created. This package provides:
//
//   - Duration: a non-negative span parsed from text such as "2h 37m"
//   - Timestamp: an RFC 3339 UTC instant such as "2018-02-14T00:28:07Z"
//
// Both types implement encoding.TextMarshaler, json.Marshaler and
// yaml.Marshaler (and their Unmarshaler counterparts), flag.Value, and the
// cleanenv Setter interface, so they can be used directly as fields of
// configuration structs. Parsing errors wrap the codec errors of the
// duration and timestamp packages and can be inspected with errors.Is.
//
// Example usage:
//
//	timeout, err := domain.ParseDuration("1m 30s")
//	if err != nil {
//	    // Handle validation error
//	}
//
//	deadline, _ := domain.Now().Add(timeout)
//	fmt.Println(deadline) // 2018-02-14T00:29:37Z
//
// Months and years are fixed at 30 and 365 days. Use Timestamp arithmetic
// only with durations where that approximation is acceptable.
package domain
