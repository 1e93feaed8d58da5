package enum_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/sXperfect/gunz-utils/enum"
)

// The noop provider exercises the full metric path: instruments are created
// at definition time and every lookup outcome is recorded.
func TestWithMeterProvider(t *testing.T) {
	colors := newColors(t, enum.WithMeterProvider(noop.NewMeterProvider()))

	got, err := colors.Parse("crimson")
	require.NoError(t, err)
	assert.Equal(t, red, got)

	_, err = colors.Parse("chartreuse")
	assert.ErrorIs(t, err, enum.ErrNotFound)

	_, err = colors.Parse(strings.Repeat("x", enum.DefaultMaxInputLen+1))
	assert.ErrorIs(t, err, enum.ErrInputTooLong)

	_, ok := colors.Find("DARK-BLUE")
	assert.True(t, ok)
}

func TestWithoutMeterProviderRecordsNothing(t *testing.T) {
	colors := newColors(t)

	// No provider configured: resolution must work with nil instruments.
	got, err := colors.Parse("red")
	require.NoError(t, err)
	assert.Equal(t, red, got)
}
