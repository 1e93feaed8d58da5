package enum

import "strconv"

// Integer is the constraint satisfied by IntSet value types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Member is one declared (name, value) pair of an enumeration.
type Member[V comparable] struct {
	Name  string
	Value V
}

// StringSet is a closed enumeration whose canonical values are strings.
// Its member set and alias table are fixed when the set is defined; all
// methods are read-only and safe for concurrent use.
type StringSet[V ~string] struct {
	*core[V]
}

// IntSet is a closed enumeration whose canonical values are integers. In
// addition to the textual matching shared with StringSet, its resolver
// accepts the decimal rendering of a canonical value.
type IntSet[V Integer] struct {
	*core[V]
}

// NewString defines a string enumeration. Members keep their declaration
// order everywhere the set reports them. The returned error is a
// *DefinitionError when the declaration itself is invalid: no members,
// duplicate names or values, keys ambiguous after lowercasing or folding,
// aliases targeting values that are not members, or bad options.
func NewString[V ~string](name string, members []Member[V], opts ...Option) (*StringSet[V], error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	display := func(v V) string { return string(v) }
	c, err := newCore(name, members, s, display, display, nil)
	if err != nil {
		return nil, err
	}
	return &StringSet[V]{core: c}, nil
}

// MustString is NewString panicking on error, for package-level variable
// declarations where an invalid definition is a programming mistake.
func MustString[V ~string](name string, members []Member[V], opts ...Option) *StringSet[V] {
	set, err := NewString(name, members, opts...)
	if err != nil {
		panic(err)
	}
	return set
}

// NewInt defines an integer enumeration. Members keep their declaration
// order everywhere the set reports them; the resolver matches member names
// and aliases textually and canonical values numerically. Error semantics
// match NewString.
func NewInt[V Integer](name string, members []Member[V], opts ...Option) (*IntSet[V], error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	display := func(v V) string { return strconv.FormatInt(int64(v), 10) }
	numValue := func(v V) int64 { return int64(v) }
	c, err := newCore(name, members, s, nil, display, numValue)
	if err != nil {
		return nil, err
	}
	return &IntSet[V]{core: c}, nil
}

// MustInt is NewInt panicking on error, for package-level variable
// declarations.
func MustInt[V Integer](name string, members []Member[V], opts ...Option) *IntSet[V] {
	set, err := NewInt(name, members, opts...)
	if err != nil {
		panic(err)
	}
	return set
}
