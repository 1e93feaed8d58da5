package input

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	// ErrMissingKey reports a key that is absent or holds nil.
	ErrMissingKey = errors.New("key is missing")

	// ErrWrongType reports a value that cannot be coerced to the
	// requested type.
	ErrWrongType = errors.New("value has the wrong type")
)

// String extracts a string value, returning defaultVal when the key is
// absent, nil, or not a string.
func String(m map[string]any, key, defaultVal string) string {
	v, err := RequireString(m, key)
	if err != nil {
		return defaultVal
	}
	return v
}

// RequireString extracts a string value or fails: ErrMissingKey when the
// key is absent or nil, ErrWrongType when the value is not a string.
func RequireString(m map[string]any, key string) (string, error) {
	val, err := lookup(m, key)
	if err != nil {
		return "", err
	}
	s, ok := val.(string)
	if !ok {
		return "", wrongType(key, "string", val)
	}
	return s, nil
}

// Int extracts an int value with the coercions of RequireInt, returning
// defaultVal when the key is absent or the value cannot be coerced.
func Int(m map[string]any, key string, defaultVal int) int {
	v, err := RequireInt(m, key)
	if err != nil {
		return defaultVal
	}
	return v
}

// RequireInt extracts an int value, coercing int64, float64 (truncated;
// JSON numbers unmarshal as float64) and decimal strings. Missing keys
// fail with ErrMissingKey, everything else with ErrWrongType.
func RequireInt(m map[string]any, key string) (int, error) {
	val, err := lookup(m, key)
	if err != nil {
		return 0, err
	}
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, wrongType(key, "int", val)
		}
		return parsed, nil
	default:
		return 0, wrongType(key, "int", val)
	}
}

// Bool extracts a bool value, returning defaultVal when the key is
// absent, nil, or not a bool.
func Bool(m map[string]any, key string, defaultVal bool) bool {
	v, err := RequireBool(m, key)
	if err != nil {
		return defaultVal
	}
	return v
}

// RequireBool extracts a bool value or fails: ErrMissingKey when the key
// is absent or nil, ErrWrongType when the value is not a bool.
func RequireBool(m map[string]any, key string) (bool, error) {
	val, err := lookup(m, key)
	if err != nil {
		return false, err
	}
	b, ok := val.(bool)
	if !ok {
		return false, wrongType(key, "bool", val)
	}
	return b, nil
}

// Float64 extracts a float64 value with the coercions of RequireFloat64,
// returning defaultVal when the key is absent or the value cannot be
// coerced.
func Float64(m map[string]any, key string, defaultVal float64) float64 {
	v, err := RequireFloat64(m, key)
	if err != nil {
		return defaultVal
	}
	return v
}

// RequireFloat64 extracts a float64 value, coercing float32, int, int64
// and numeric strings. Missing keys fail with ErrMissingKey, everything
// else with ErrWrongType.
func RequireFloat64(m map[string]any, key string) (float64, error) {
	val, err := lookup(m, key)
	if err != nil {
		return 0, err
	}
	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, wrongType(key, "float64", val)
		}
		return parsed, nil
	default:
		return 0, wrongType(key, "float64", val)
	}
}

// StringSlice extracts a []string value. []any elements are rendered with
// fmt.Sprintf and nil elements skipped; a single string becomes a
// one-element slice. Returns nil when the key is absent, nil, or cannot
// be converted.
func StringSlice(m map[string]any, key string) []string {
	val, err := lookup(m, key)
	if err != nil {
		return nil
	}
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			result = append(result, fmt.Sprintf("%v", item))
		}
		return result
	case string:
		return []string{v}
	default:
		return nil
	}
}

// Map extracts a nested map[string]any, or nil when the key is absent,
// nil, or not a map.
func Map(m map[string]any, key string) map[string]any {
	val, err := lookup(m, key)
	if err != nil {
		return nil
	}
	nested, ok := val.(map[string]any)
	if !ok {
		return nil
	}
	return nested
}

// Duration extracts a time.Duration value with the coercions of
// RequireDuration, returning defaultVal when the key is absent or the
// value cannot be coerced.
func Duration(m map[string]any, key string, defaultVal time.Duration) time.Duration {
	v, err := RequireDuration(m, key)
	if err != nil {
		return defaultVal
	}
	return v
}

// RequireDuration extracts a time.Duration value. Bare numbers are
// interpreted as seconds; strings parse as time.ParseDuration forms like
// "5m" or "1h30m", falling back to integer seconds. Missing keys fail
// with ErrMissingKey, everything else with ErrWrongType.
func RequireDuration(m map[string]any, key string) (time.Duration, error) {
	val, err := lookup(m, key)
	if err != nil {
		return 0, err
	}
	switch v := val.(type) {
	case time.Duration:
		return v, nil
	case int:
		return time.Duration(v) * time.Second, nil
	case int64:
		return time.Duration(v) * time.Second, nil
	case float64:
		return time.Duration(v) * time.Second, nil
	case string:
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed, nil
		}
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second, nil
		}
		return 0, wrongType(key, "duration", val)
	default:
		return 0, wrongType(key, "duration", val)
	}
}

// lookup resolves key, treating nil values the same as absent keys.
func lookup(m map[string]any, key string) (any, error) {
	val, ok := m[key]
	if !ok || val == nil {
		return nil, fmt.Errorf("key %q: %w", key, ErrMissingKey)
	}
	return val, nil
}

// wrongType builds the coercion failure. It names the key and the
// offending type but never the value, so secrets passed in a mistyped
// argument cannot leak into logs.
func wrongType(key, want string, got any) error {
	return fmt.Errorf("key %q: want %s, got %T: %w", key, want, got, ErrWrongType)
}
