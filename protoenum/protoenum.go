package protoenum

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/sXperfect/gunz-utils/enum"
)

// settings collects the adapter options.
type settings struct {
	trimPrefix bool
	aliases    map[string]protoreflect.EnumNumber
	enumOpts   []enum.Option
}

// Option configures the adapter.
type Option func(*settings)

// WithPrefixTrimming adds shorthand aliases with the conventional
// SCREAMING_SNAKE enum-name prefix removed, so the values of
//
//	enum ScanType { SCAN_TYPE_SYN = 0; SCAN_TYPE_UDP = 1; }
//
// also resolve from "syn" and "udp". Shorthands that would collide with an
// existing key, or that look numeric, are skipped.
func WithPrefixTrimming() Option {
	return func(s *settings) {
		s.trimPrefix = true
	}
}

// WithAliases adds author-supplied aliases on top of the generated ones.
func WithAliases(aliases map[string]protoreflect.EnumNumber) Option {
	return func(s *settings) {
		if s.aliases == nil {
			s.aliases = make(map[string]protoreflect.EnumNumber, len(aliases))
		}
		for k, v := range aliases {
			s.aliases[k] = v
		}
	}
}

// WithSetOptions forwards options to the underlying enumeration, such as
// enum.WithLogger or enum.WithMeterProvider.
func WithSetOptions(opts ...enum.Option) Option {
	return func(s *settings) {
		s.enumOpts = append(s.enumOpts, opts...)
	}
}

// Set builds a fuzzy integer enumeration from a protobuf enum descriptor.
// Member names are the declared value names, canonical values their
// numbers, and declaration order is preserved. For enums using
// allow_alias, the first name of each number becomes the member and later
// names become aliases.
func Set(desc protoreflect.EnumDescriptor, opts ...Option) (*enum.IntSet[protoreflect.EnumNumber], error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	values := desc.Values()
	members := make([]enum.Member[protoreflect.EnumNumber], 0, values.Len())
	aliases := make(map[string]protoreflect.EnumNumber)
	claimed := make(map[string]bool, values.Len())
	seen := make(map[protoreflect.EnumNumber]bool, values.Len())

	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		name := string(v.Name())
		number := v.Number()
		claimed[strings.ToLower(name)] = true
		if seen[number] {
			// allow_alias: the first declaration stays the member.
			aliases[name] = number
			continue
		}
		seen[number] = true
		members = append(members, enum.Member[protoreflect.EnumNumber]{Name: name, Value: number})
	}

	if s.trimPrefix {
		prefix := screamingSnake(string(desc.Name())) + "_"
		for _, m := range members {
			short, ok := strings.CutPrefix(m.Name, prefix)
			if !ok || short == "" {
				continue
			}
			if _, err := strconv.ParseInt(short, 10, 64); err == nil {
				continue
			}
			key := strings.ToLower(short)
			if claimed[key] {
				continue
			}
			claimed[key] = true
			aliases[short] = m.Value
		}
	}

	// Author-supplied aliases land last so an exact key overrides a
	// generated shorthand; remaining conflicts surface as definition
	// errors from the enumeration itself.
	for k, v := range s.aliases {
		aliases[k] = v
	}

	enumOpts := slices.Clone(s.enumOpts)
	if len(aliases) > 0 {
		enumOpts = append(enumOpts, enum.WithAliases(aliases))
	}
	return enum.NewInt(string(desc.Name()), members, enumOpts...)
}

// MustSet is Set panicking on error, for package-level variable
// declarations built from generated descriptors.
func MustSet(desc protoreflect.EnumDescriptor, opts ...Option) *enum.IntSet[protoreflect.EnumNumber] {
	set, err := Set(desc, opts...)
	if err != nil {
		panic(err)
	}
	return set
}

// screamingSnake converts a CamelCase descriptor name to the
// SCREAMING_SNAKE form used as the conventional prefix of proto enum value
// names, so "ScanType" yields "SCAN_TYPE".
func screamingSnake(name string) string {
	rs := []rune(name)
	var b strings.Builder
	b.Grow(len(rs) + len(rs)/2)
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextIsLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if (!unicode.IsUpper(prev) && prev != '_') || (unicode.IsUpper(prev) && nextIsLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
