// Package input provides type-safe helpers for extracting values from
// map[string]any.
//
// It simplifies working with JSON-unmarshaled data or configuration maps
// where types vary (numbers arrive as float64, int, or string). Every
// scalar has a lenient getter returning a default on mismatch and a
// strict Require variant returning an error.
//
// # Lenient getters
//
// Lenient getters never fail; they coerce what they can and fall back to
// the supplied default:
//
//	config := map[string]any{
//		"host":    "example.com",
//		"port":    8080,
//		"timeout": "30s",
//		"enabled": true,
//	}
//
//	host := input.String(config, "host", "localhost")
//	port := input.Int(config, "port", 80)
//	timeout := input.Duration(config, "timeout", 10*time.Second)
//	enabled := input.Bool(config, "enabled", false)
//
// # Strict getters
//
// The Require variants fail loudly instead of defaulting, wrapping
// ErrMissingKey or ErrWrongType for errors.Is dispatch:
//
//	port, err := input.RequireInt(config, "port")
//	if errors.Is(err, input.ErrMissingKey) {
//		return fmt.Errorf("config: %w", err)
//	}
//
// Their messages name the key and the offending type but never the
// value, so a secret passed in a mistyped argument cannot leak into logs
// through the error chain.
//
// # Type coercion
//
// Both flavors coerce the same way:
//
//   - Int: int, int64, float64 (truncated), and decimal strings
//   - Float64: float64, float32, int, int64, and numeric strings
//   - StringSlice: []string, []any, and single strings
//   - Duration: time.Duration, bare numbers as seconds, and strings like "5m"
package input
