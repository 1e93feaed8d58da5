package catalog

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/sXperfect/gunz-utils/enum"
)

// settings collects the enum options forwarded to every enumeration a
// catalog builds.
type settings struct {
	enumOpts []enum.Option
}

// Option configures catalog parsing.
type Option func(*settings)

// WithLogger forwards a logger to every enumeration built by the catalog.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.enumOpts = append(s.enumOpts, enum.WithLogger(logger))
	}
}

// WithMeterProvider forwards a MeterProvider to every enumeration built by
// the catalog.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *settings) {
		s.enumOpts = append(s.enumOpts, enum.WithMeterProvider(mp))
	}
}

// WithMaxInputLen overrides the resolver input limit for every enumeration
// built by the catalog.
func WithMaxInputLen(n int) Option {
	return func(s *settings) {
		s.enumOpts = append(s.enumOpts, enum.WithMaxInputLen(n))
	}
}

// WithAccentFolding enables accent folding for every enumeration built by
// the catalog.
func WithAccentFolding() Option {
	return func(s *settings) {
		s.enumOpts = append(s.enumOpts, enum.WithAccentFolding())
	}
}
