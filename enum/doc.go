// Package enum provides closed enumerations with fuzzy, alias-aware
// resolution of loosely formatted input.
//
// An enumeration is declared once, with an ordered member list and an
// optional alias table, and is immutable afterwards. Two kinds exist:
// StringSet for string-valued members and IntSet for integer-valued ones.
//
// # Declaring
//
// Declare sets at package level with MustString or MustInt:
//
//	type Color string
//
//	const (
//	    Red      Color = "red"
//	    Blue     Color = "blue"
//	    DarkBlue Color = "dark_blue"
//	)
//
//	var Colors = enum.MustString("Color", []enum.Member[Color]{
//	    {Name: "RED", Value: Red},
//	    {Name: "BLUE", Value: Blue},
//	    {Name: "DARK_BLUE", Value: DarkBlue},
//	}, enum.WithAliases(map[string]Color{
//	    "crimson": Red,
//	    "dark":    DarkBlue,
//	}))
//
// Invalid declarations (duplicate members, ambiguous keys, aliases that
// target non-members) fail immediately with a *DefinitionError; nothing is
// deferred to resolution time.
//
// # Resolving
//
// Parse accepts member names, canonical values, and alias keys, all
// case-insensitively, and finally retries with separator folding, so
// "RED", "crimson", "DARK-BLUE" and "Dark Blue" all resolve:
//
//	c, err := Colors.Parse("DARK-BLUE") // DarkBlue, nil
//	c, ok := Colors.Find("crimson")     // Red, true
//
// Integer sets also accept the decimal form of a canonical value, with
// surrounding whitespace tolerated:
//
//	code, err := Codes.Parse(" 404 ")
//
// Unmatched input fails with ErrNotFound. Input longer than the
// enumeration's byte limit (DefaultMaxInputLen unless overridden) fails
// with ErrInputTooLong before any transformation, which bounds the cost of
// hostile input.
//
// # Lookup index
//
// The resolver runs off a per-enumeration index built lazily on first use
// and reused for the process lifetime. Because declarations are fully
// validated up front, the build cannot fail, and sync.OnceValue guarantees
// concurrent first callers observe a single, completed index.
//
// # Observability
//
// Sets are silent by default. WithLogger enables slog debug logging of
// definitions and index builds; WithMeterProvider enables OpenTelemetry
// counters for lookups (by outcome) and index builds.
package enum
