// Package gunzutils collects small, security-minded building blocks for
// services and command-line tools: fuzzy enumerations, declarative
// enumeration catalogs, protobuf enum adapters, filename sanitization,
// and type-safe extraction from loose maps.
//
// # Packages
//
// The module is organized as independent packages; import the ones a
// program needs:
//
//   - enum: closed enumerations with forgiving, bounded member resolution
//   - catalog: enumerations declared in YAML documents
//   - protoenum: enumerations built from protobuf enum descriptors
//   - safepath: filename sanitization and traversal-safe joins
//   - input: lenient and strict value extraction from map[string]any
//
// # Design
//
// Untrusted input is treated as hostile everywhere: resolvers bound input
// length before touching it, validation errors never echo the offending
// value, and filenames are reduced to a safe character set. Definitions
// are immutable once built and safe for concurrent use.
//
// All packages share the same ambient conventions: functional options for
// configuration, sentinel and structured errors for errors.Is/errors.As
// dispatch, optional log/slog logging, and optional OpenTelemetry metrics.
// Nothing is global; a zero-configuration call does no logging and records
// no metrics.
package gunzutils
