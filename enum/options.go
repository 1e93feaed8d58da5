package enum

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

// DefaultMaxInputLen is the byte limit applied to resolver input when
// WithMaxInputLen is not given. The limit is enforced before any
// transformation, so arbitrarily large inputs cost a single length check.
const DefaultMaxInputLen = 1024

// settings collects everything the definition-time options can change.
// Alias and default values arrive untyped and are checked against the
// member set inside NewString and NewInt.
type settings struct {
	aliases       map[string]any
	defaultValue  any
	hasDefault    bool
	maxInputLen   int
	foldAccents   bool
	logger        *slog.Logger
	meterProvider metric.MeterProvider
}

func defaultSettings() settings {
	return settings{maxInputLen: DefaultMaxInputLen}
}

// Option configures an enumeration at definition time.
type Option func(*settings)

// WithAliases attaches a table of alternative spellings. Keys are matched
// case-insensitively and every target must be a declared member value; a
// key equal to a member name or value of a different member is a
// definition error. For integer enumerations, keys that parse as decimal
// integers are matched on the numeric path instead of the textual one.
func WithAliases[V comparable](aliases map[string]V) Option {
	return func(s *settings) {
		m := make(map[string]any, len(aliases))
		for k, v := range aliases {
			m[k] = v
		}
		s.aliases = m
	}
}

// WithDefault makes empty input resolve to the member with value v instead
// of failing with ErrNotFound. The value must belong to a declared member.
func WithDefault[V comparable](v V) Option {
	return func(s *settings) {
		s.defaultValue = v
		s.hasDefault = true
	}
}

// WithMaxInputLen overrides DefaultMaxInputLen for one enumeration.
// n is a byte count and must be at least 1.
func WithMaxInputLen(n int) Option {
	return func(s *settings) {
		s.maxInputLen = n
	}
}

// WithAccentFolding makes the folded resolution stage strip combining
// marks, so "Élodie" reaches a member whose folded form is "elodie".
func WithAccentFolding() Option {
	return func(s *settings) {
		s.foldAccents = true
	}
}

// WithLogger enables debug logging of the definition and of index builds.
// A nil logger disables logging, which is the default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMeterProvider enables OpenTelemetry counters for lookups and index
// builds. Without a provider the enumeration records nothing.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *settings) {
		s.meterProvider = mp
	}
}
