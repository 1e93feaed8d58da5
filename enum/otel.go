package enum

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName identifies this package to the MeterProvider.
const meterName = "github.com/sXperfect/gunz-utils/enum"

// Lookup outcome attribute values.
const (
	outcomeHit     = "hit"
	outcomeMiss    = "miss"
	outcomeTooLong = "too_long"
)

// otelMetrics holds the metric instruments of one enumeration. They are
// created once at definition time when a MeterProvider is configured and
// reused for every lookup.
type otelMetrics struct {
	// enum tags every measurement with the enumeration name.
	enum attribute.KeyValue

	// lookupCounter increments per resolver call, tagged with the outcome.
	lookupCounter metric.Int64Counter

	// buildCounter increments when the lookup index is built.
	buildCounter metric.Int64Counter
}

// initOTelMetrics creates the metric instruments for one enumeration.
// A nil provider means metrics stay disabled.
func initOTelMetrics(mp metric.MeterProvider, enum string) (*otelMetrics, error) {
	if mp == nil {
		return nil, nil
	}

	meter := mp.Meter(meterName)
	m := &otelMetrics{enum: attribute.String("enum", enum)}
	var err error

	m.lookupCounter, err = meter.Int64Counter(
		"enum.lookup.count",
		metric.WithDescription("Number of fuzzy lookups performed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create lookup counter: %w", err)
	}

	m.buildCounter, err = meter.Int64Counter(
		"enum.index.builds",
		metric.WithDescription("Number of lookup index builds"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create index build counter: %w", err)
	}

	return m, nil
}

// recordLookup counts one resolver call. It returns silently when metrics
// are not configured, so resolution never depends on the meter.
func (m *otelMetrics) recordLookup(outcome string) {
	if m == nil || m.lookupCounter == nil {
		return
	}
	m.lookupCounter.Add(context.Background(), 1,
		metric.WithAttributes(m.enum, attribute.String("outcome", outcome)))
}

// recordBuild counts one index build.
func (m *otelMetrics) recordBuild() {
	if m == nil || m.buildCounter == nil {
		return
	}
	m.buildCounter.Add(context.Background(), 1, metric.WithAttributes(m.enum))
}
