package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		m        map[string]any
		key      string
		defVal   string
		expected string
	}{
		{
			name:     "existing string value",
			m:        map[string]any{"key": "value"},
			key:      "key",
			defVal:   "default",
			expected: "value",
		},
		{
			name:     "missing key returns default",
			m:        map[string]any{"other": "value"},
			key:      "key",
			defVal:   "default",
			expected: "default",
		},
		{
			name:     "nil value returns default",
			m:        map[string]any{"key": nil},
			key:      "key",
			defVal:   "default",
			expected: "default",
		},
		{
			name:     "wrong type returns default",
			m:        map[string]any{"key": 123},
			key:      "key",
			defVal:   "default",
			expected: "default",
		},
		{
			name:     "nil map returns default",
			m:        nil,
			key:      "key",
			defVal:   "default",
			expected: "default",
		},
		{
			name:     "empty string value",
			m:        map[string]any{"key": ""},
			key:      "key",
			defVal:   "default",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := String(tt.m, tt.key, tt.defVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name     string
		m        map[string]any
		key      string
		defVal   int
		expected int
	}{
		{
			name:     "int value",
			m:        map[string]any{"key": 42},
			key:      "key",
			defVal:   0,
			expected: 42,
		},
		{
			name:     "int64 value",
			m:        map[string]any{"key": int64(100)},
			key:      "key",
			defVal:   0,
			expected: 100,
		},
		{
			name:     "float64 value truncates",
			m:        map[string]any{"key": 123.5},
			key:      "key",
			defVal:   0,
			expected: 123,
		},
		{
			name:     "string value as number",
			m:        map[string]any{"key": "456"},
			key:      "key",
			defVal:   0,
			expected: 456,
		},
		{
			name:     "string value not a number",
			m:        map[string]any{"key": "not a number"},
			key:      "key",
			defVal:   99,
			expected: 99,
		},
		{
			name:     "missing key returns default",
			m:        map[string]any{"other": 42},
			key:      "key",
			defVal:   77,
			expected: 77,
		},
		{
			name:     "nil value returns default",
			m:        map[string]any{"key": nil},
			key:      "key",
			defVal:   88,
			expected: 88,
		},
		{
			name:     "wrong type returns default",
			m:        map[string]any{"key": true},
			key:      "key",
			defVal:   66,
			expected: 66,
		},
		{
			name:     "nil map returns default",
			m:        nil,
			key:      "key",
			defVal:   55,
			expected: 55,
		},
		{
			name:     "negative int",
			m:        map[string]any{"key": -42},
			key:      "key",
			defVal:   0,
			expected: -42,
		},
		{
			name:     "negative float64",
			m:        map[string]any{"key": -123.9},
			key:      "key",
			defVal:   0,
			expected: -123,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Int(tt.m, tt.key, tt.defVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		name     string
		m        map[string]any
		key      string
		defVal   bool
		expected bool
	}{
		{
			name:     "true value",
			m:        map[string]any{"key": true},
			key:      "key",
			defVal:   false,
			expected: true,
		},
		{
			name:     "false value",
			m:        map[string]any{"key": false},
			key:      "key",
			defVal:   true,
			expected: false,
		},
		{
			name:     "missing key returns default",
			m:        map[string]any{"other": true},
			key:      "key",
			defVal:   true,
			expected: true,
		},
		{
			name:     "string is not coerced",
			m:        map[string]any{"key": "true"},
			key:      "key",
			defVal:   false,
			expected: false,
		},
		{
			name:     "nil map returns default",
			m:        nil,
			key:      "key",
			defVal:   true,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Bool(tt.m, tt.key, tt.defVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFloat64(t *testing.T) {
	tests := []struct {
		name     string
		m        map[string]any
		key      string
		defVal   float64
		expected float64
	}{
		{
			name:     "float64 value",
			m:        map[string]any{"key": 3.14},
			key:      "key",
			defVal:   0.0,
			expected: 3.14,
		},
		{
			name:     "float32 value",
			m:        map[string]any{"key": float32(2.5)},
			key:      "key",
			defVal:   0.0,
			expected: 2.5,
		},
		{
			name:     "int value",
			m:        map[string]any{"key": 42},
			key:      "key",
			defVal:   0.0,
			expected: 42.0,
		},
		{
			name:     "string value as number",
			m:        map[string]any{"key": "3.14159"},
			key:      "key",
			defVal:   0.0,
			expected: 3.14159,
		},
		{
			name:     "string value not a number",
			m:        map[string]any{"key": "not a number"},
			key:      "key",
			defVal:   99.9,
			expected: 99.9,
		},
		{
			name:     "wrong type returns default",
			m:        map[string]any{"key": true},
			key:      "key",
			defVal:   7.89,
			expected: 7.89,
		},
		{
			name:     "negative float64",
			m:        map[string]any{"key": -3.14},
			key:      "key",
			defVal:   0.0,
			expected: -3.14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Float64(tt.m, tt.key, tt.defVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestStringSlice(t *testing.T) {
	tests := []struct {
		name     string
		m        map[string]any
		key      string
		expected []string
	}{
		{
			name:     "[]string value",
			m:        map[string]any{"key": []string{"a", "b", "c"}},
			key:      "key",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "[]any value with strings",
			m:        map[string]any{"key": []any{"x", "y", "z"}},
			key:      "key",
			expected: []string{"x", "y", "z"},
		},
		{
			name:     "[]any value with mixed types",
			m:        map[string]any{"key": []any{"string", 123, true}},
			key:      "key",
			expected: []string{"string", "123", "true"},
		},
		{
			name:     "[]any with nil elements",
			m:        map[string]any{"key": []any{"a", nil, "b"}},
			key:      "key",
			expected: []string{"a", "b"},
		},
		{
			name:     "single string value",
			m:        map[string]any{"key": "single"},
			key:      "key",
			expected: []string{"single"},
		},
		{
			name:     "missing key returns nil",
			m:        map[string]any{"other": []string{"a"}},
			key:      "key",
			expected: nil,
		},
		{
			name:     "wrong type returns nil",
			m:        map[string]any{"key": 123},
			key:      "key",
			expected: nil,
		},
		{
			name:     "empty []string",
			m:        map[string]any{"key": []string{}},
			key:      "key",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StringSlice(tt.m, tt.key)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMap(t *testing.T) {
	tests := []struct {
		name     string
		m        map[string]any
		key      string
		expected map[string]any
	}{
		{
			name:     "nested map",
			m:        map[string]any{"key": map[string]any{"nested": "value"}},
			key:      "key",
			expected: map[string]any{"nested": "value"},
		},
		{
			name:     "missing key returns nil",
			m:        map[string]any{"other": map[string]any{"x": "y"}},
			key:      "key",
			expected: nil,
		},
		{
			name:     "wrong type returns nil",
			m:        map[string]any{"key": "not a map"},
			key:      "key",
			expected: nil,
		},
		{
			name:     "empty nested map",
			m:        map[string]any{"key": map[string]any{}},
			key:      "key",
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Map(tt.m, tt.key)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name     string
		m        map[string]any
		key      string
		defVal   time.Duration
		expected time.Duration
	}{
		{
			name:     "time.Duration value",
			m:        map[string]any{"key": 5 * time.Second},
			key:      "key",
			defVal:   0,
			expected: 5 * time.Second,
		},
		{
			name:     "int value as seconds",
			m:        map[string]any{"key": 30},
			key:      "key",
			defVal:   0,
			expected: 30 * time.Second,
		},
		{
			name:     "int64 value as seconds",
			m:        map[string]any{"key": int64(60)},
			key:      "key",
			defVal:   0,
			expected: 60 * time.Second,
		},
		{
			name:     "float64 value as seconds",
			m:        map[string]any{"key": 45.5},
			key:      "key",
			defVal:   0,
			expected: 45 * time.Second,
		},
		{
			name:     "string duration format",
			m:        map[string]any{"key": "5m"},
			key:      "key",
			defVal:   0,
			expected: 5 * time.Minute,
		},
		{
			name:     "string duration with multiple units",
			m:        map[string]any{"key": "1h30m"},
			key:      "key",
			defVal:   0,
			expected: 90 * time.Minute,
		},
		{
			name:     "string numeric seconds",
			m:        map[string]any{"key": "120"},
			key:      "key",
			defVal:   0,
			expected: 120 * time.Second,
		},
		{
			name:     "string invalid format returns default",
			m:        map[string]any{"key": "invalid"},
			key:      "key",
			defVal:   10 * time.Second,
			expected: 10 * time.Second,
		},
		{
			name:     "missing key returns default",
			m:        map[string]any{"other": "5m"},
			key:      "key",
			defVal:   15 * time.Second,
			expected: 15 * time.Second,
		},
		{
			name:     "zero int",
			m:        map[string]any{"key": 0},
			key:      "key",
			defVal:   10 * time.Second,
			expected: 0,
		},
		{
			name:     "string milliseconds",
			m:        map[string]any{"key": "500ms"},
			key:      "key",
			defVal:   0,
			expected: 500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Duration(tt.m, tt.key, tt.defVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRequireString(t *testing.T) {
	m := map[string]any{"name": "scanner", "count": 3, "gone": nil}

	got, err := RequireString(m, "name")
	require.NoError(t, err)
	assert.Equal(t, "scanner", got)

	_, err = RequireString(m, "count")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = RequireString(m, "gone")
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = RequireString(m, "absent")
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = RequireString(nil, "name")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestRequireInt(t *testing.T) {
	m := map[string]any{
		"int":    42,
		"int64":  int64(100),
		"float":  123.5,
		"string": "456",
		"bad":    "not a number",
		"bool":   true,
	}

	for key, want := range map[string]int{
		"int": 42, "int64": 100, "float": 123, "string": 456,
	} {
		got, err := RequireInt(m, key)
		require.NoError(t, err, "key %q", key)
		assert.Equal(t, want, got, "key %q", key)
	}

	_, err := RequireInt(m, "bad")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = RequireInt(m, "bool")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = RequireInt(m, "absent")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestRequireBool(t *testing.T) {
	m := map[string]any{"on": true, "off": false, "text": "true"}

	got, err := RequireBool(m, "on")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = RequireBool(m, "off")
	require.NoError(t, err)
	assert.False(t, got)

	_, err = RequireBool(m, "text")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = RequireBool(m, "absent")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestRequireFloat64(t *testing.T) {
	m := map[string]any{"pi": 3.14, "text": "3.14159", "bad": "nope"}

	got, err := RequireFloat64(m, "pi")
	require.NoError(t, err)
	assert.Equal(t, 3.14, got)

	got, err = RequireFloat64(m, "text")
	require.NoError(t, err)
	assert.Equal(t, 3.14159, got)

	_, err = RequireFloat64(m, "bad")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = RequireFloat64(m, "absent")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestRequireDuration(t *testing.T) {
	m := map[string]any{"timeout": "1h30m", "retry": 15, "bad": "soon"}

	got, err := RequireDuration(m, "timeout")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, got)

	got, err = RequireDuration(m, "retry")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, got)

	_, err = RequireDuration(m, "bad")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = RequireDuration(m, "absent")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestRequireErrorsNameKeyAndType(t *testing.T) {
	m := map[string]any{"age": true}

	_, err := RequireInt(m, "age")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"age"`)
	assert.Contains(t, err.Error(), "bool")
}

func TestRequireErrorsNeverEchoValues(t *testing.T) {
	// A secret passed in a mistyped argument must not surface in the
	// error chain, where it would end up in logs.
	secret := "MySecretPassword123!"
	m := map[string]any{"age": secret}

	_, err := RequireInt(m, "age")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), secret)
	assert.Contains(t, err.Error(), "string")

	_, err = RequireBool(m, "age")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), secret)

	_, err = RequireDuration(m, "age")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), secret)
}

// Benchmark tests to ensure no allocations in hot paths
func BenchmarkString(b *testing.B) {
	m := map[string]any{"key": "value"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = String(m, "key", "default")
	}
}

func BenchmarkInt(b *testing.B) {
	m := map[string]any{"key": 42}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Int(m, "key", 0)
	}
}

func BenchmarkIntCoercion(b *testing.B) {
	m := map[string]any{"key": 42.5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Int(m, "key", 0)
	}
}

func BenchmarkStringSlice(b *testing.B) {
	m := map[string]any{"key": []string{"a", "b", "c"}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = StringSlice(m, "key")
	}
}

func BenchmarkDuration(b *testing.B) {
	m := map[string]any{"key": "5m"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Duration(m, "key", 0)
	}
}
