package enum

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// core carries the immutable definition shared by StringSet and IntSet.
// The exported behavior of both kinds is promoted from here; the kinds
// differ only in how member values become keys and in the numeric fast
// path, both of which are fixed by the constructors.
type core[V comparable] struct {
	name    string
	members []Member[V]
	byValue map[V]int

	// textAliases maps lowercased non-numeric alias keys to member
	// positions. nums holds the canonical integer values plus numeric alias
	// keys; it is nil for string sets, which have no numeric path.
	textAliases map[string]int
	nums        map[int64]int

	// valueKey yields the textual key form of a canonical value. It is nil
	// for integer sets, whose values are matched numerically instead.
	valueKey func(V) string

	// choices renders the canonical values in declaration order.
	choices []string

	defaultMember int // position resolved for empty input, -1 when unset
	maxInputLen   int
	folder        folder

	logger  *slog.Logger
	metrics *otelMetrics

	// index returns the lookup index, building it on first call.
	index func() *lookupIndex
}

// newCore validates a declaration and assembles the shared definition.
// valueKey and numValue select the kind: string sets pass a valueKey and a
// nil numValue, integer sets the reverse. Every ambiguity is rejected here
// so that the lazy index build cannot fail.
func newCore[V comparable](name string, members []Member[V], s settings,
	valueKey, display func(V) string, numValue func(V) int64) (*core[V], error) {

	if name == "" {
		return nil, &DefinitionError{Enum: "(unnamed)", Detail: "empty enumeration name"}
	}
	if len(members) == 0 {
		return nil, defErrorf(name, "no members")
	}
	if s.maxInputLen < 1 {
		return nil, defErrorf(name, "max input length %d, must be at least 1", s.maxInputLen)
	}

	f := folder{accents: s.foldAccents}
	byName := make(map[string]int, len(members))
	byValue := make(map[V]int, len(members))
	choices := make([]string, len(members))
	var nums map[int64]int
	if numValue != nil {
		nums = make(map[int64]int, len(members))
	}

	// keyClaims covers the lowercased key space (names, string values,
	// textual alias keys), foldClaims the folded one. A key claimed by two
	// different members would make resolution ambiguous.
	keyClaims := make(map[string]int, 2*len(members))
	foldClaims := make(map[string]int, 2*len(members))
	claim := func(claims map[string]int, key, what string, pos int) error {
		if prev, ok := claims[key]; ok && prev != pos {
			return defErrorf(name, "%s %q would resolve to both %s and %s",
				what, key, members[prev].Name, members[pos].Name)
		}
		claims[key] = pos
		return nil
	}

	for i, m := range members {
		if m.Name == "" {
			return nil, defErrorf(name, "member %d has an empty name", i)
		}
		if _, ok := byName[m.Name]; ok {
			return nil, defErrorf(name, "duplicate member name %q", m.Name)
		}
		byName[m.Name] = i
		if prev, ok := byValue[m.Value]; ok {
			return nil, defErrorf(name, "members %s and %s share the value %s",
				members[prev].Name, m.Name, display(m.Value))
		}
		byValue[m.Value] = i
		choices[i] = display(m.Value)

		if err := claim(keyClaims, strings.ToLower(m.Name), "key", i); err != nil {
			return nil, err
		}
		folded := f.fold(m.Name)
		if folded == "" {
			return nil, defErrorf(name, "member name %q folds to nothing", m.Name)
		}
		if err := claim(foldClaims, folded, "folded key", i); err != nil {
			return nil, err
		}

		if valueKey != nil {
			v := valueKey(m.Value)
			if err := claim(keyClaims, strings.ToLower(v), "key", i); err != nil {
				return nil, err
			}
			if fv := f.fold(v); fv != "" {
				if err := claim(foldClaims, fv, "folded key", i); err != nil {
					return nil, err
				}
			}
		}
		if numValue != nil {
			nums[numValue(m.Value)] = i
		}
	}

	textAliases := make(map[string]int, len(s.aliases))
	for _, key := range slices.Sorted(maps.Keys(s.aliases)) {
		target, ok := s.aliases[key].(V)
		if !ok {
			return nil, defErrorf(name, "alias %q: target has type %T, not the member value type",
				key, s.aliases[key])
		}
		pos, ok := byValue[target]
		if !ok {
			return nil, defErrorf(name, "alias %q targets %s, which is not a member value",
				key, display(target))
		}
		if key == "" {
			return nil, defErrorf(name, "empty alias key targeting %s", members[pos].Name)
		}
		if numValue != nil {
			if n, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64); err == nil {
				if prev, ok := nums[n]; ok && prev != pos {
					return nil, defErrorf(name, "numeric alias %q would resolve to both %s and %s",
						key, members[prev].Name, members[pos].Name)
				}
				nums[n] = pos
				continue // numeric aliases never join the textual maps
			}
		}
		lk := strings.ToLower(key)
		if err := claim(keyClaims, lk, "alias key", pos); err != nil {
			return nil, err
		}
		if fk := f.fold(key); fk != "" {
			if err := claim(foldClaims, fk, "folded alias key", pos); err != nil {
				return nil, err
			}
		}
		textAliases[lk] = pos
	}

	defaultMember := -1
	if s.hasDefault {
		v, ok := s.defaultValue.(V)
		if !ok {
			return nil, defErrorf(name, "default value has type %T, not the member value type",
				s.defaultValue)
		}
		pos, ok := byValue[v]
		if !ok {
			return nil, defErrorf(name, "default value %s is not a member value", display(v))
		}
		defaultMember = pos
	}

	metrics, err := initOTelMetrics(s.meterProvider, name)
	if err != nil {
		return nil, fmt.Errorf("enum %s: %w", name, err)
	}

	c := &core[V]{
		name:          name,
		members:       slices.Clone(members),
		byValue:       byValue,
		textAliases:   textAliases,
		nums:          nums,
		valueKey:      valueKey,
		choices:       choices,
		defaultMember: defaultMember,
		maxInputLen:   s.maxInputLen,
		folder:        f,
		logger:        s.logger,
		metrics:       metrics,
	}
	c.index = sync.OnceValue(c.buildIndex)

	if c.logger != nil {
		c.logger.Debug("enum: defined enumeration",
			"enum", name, "members", len(members), "aliases", len(s.aliases))
	}
	return c, nil
}

// resolve maps input to a member position and an outcome. The byte limit is
// enforced before anything else; empty input falls back to the default
// member when one is declared; integer sets try the numeric path next, and
// numeric-looking input never continues to the textual stages. The textual
// stages probe direct keys, then alias keys, then folded keys.
func (c *core[V]) resolve(input string) (int, string) {
	if len(input) > c.maxInputLen {
		return -1, outcomeTooLong
	}
	if input == "" && c.defaultMember >= 0 {
		return c.defaultMember, outcomeHit
	}
	if c.nums != nil {
		if t := strings.TrimSpace(input); t != "" {
			if n, err := strconv.ParseInt(t, 10, 64); err == nil {
				if pos, ok := c.nums[n]; ok {
					return pos, outcomeHit
				}
				return -1, outcomeMiss
			}
		}
	}
	idx := c.index()
	key := strings.ToLower(input)
	if pos, ok := idx.direct[key]; ok {
		return pos, outcomeHit
	}
	if pos, ok := idx.alias[key]; ok {
		return pos, outcomeHit
	}
	if pos, ok := idx.folded[c.folder.fold(input)]; ok {
		return pos, outcomeHit
	}
	return -1, outcomeMiss
}

// Parse resolves loosely formatted input to a canonical value. Member
// names and values match case-insensitively, alias keys resolve to their
// targets, and as a last stage separator-insensitive folding is applied,
// so "DARK-BLUE", "dark_blue" and "Dark Blue" all reach the same member.
// Integer sets additionally accept the decimal form of a canonical value,
// with surrounding whitespace tolerated.
//
// Input longer than the definition's byte limit fails with ErrInputTooLong
// before any matching; unmatched input fails with ErrNotFound. Parse never
// mutates the set and is safe for concurrent use.
func (c *core[V]) Parse(input string) (V, error) {
	pos, outcome := c.resolve(input)
	c.metrics.recordLookup(outcome)
	switch outcome {
	case outcomeTooLong:
		var zero V
		return zero, fmt.Errorf("%s: input of %d bytes exceeds the %d byte limit: %w",
			c.name, len(input), c.maxInputLen, ErrInputTooLong)
	case outcomeMiss:
		var zero V
		return zero, fmt.Errorf("%q is not a valid %s (choices: %s): %w",
			input, c.name, strings.Join(c.choices, ", "), ErrNotFound)
	}
	return c.members[pos].Value, nil
}

// Find is Parse without the error: the boolean reports whether input
// resolved to a member.
func (c *core[V]) Find(input string) (V, bool) {
	pos, outcome := c.resolve(input)
	c.metrics.recordLookup(outcome)
	if outcome != outcomeHit {
		var zero V
		return zero, false
	}
	return c.members[pos].Value, true
}

// Name returns the declared name of the enumeration.
func (c *core[V]) Name() string { return c.name }

// Len returns the number of members.
func (c *core[V]) Len() int { return len(c.members) }

// Names returns the member names in declaration order.
func (c *core[V]) Names() []string {
	names := make([]string, len(c.members))
	for i, m := range c.members {
		names[i] = m.Name
	}
	return names
}

// Values returns the canonical values in declaration order.
func (c *core[V]) Values() []V {
	values := make([]V, len(c.members))
	for i, m := range c.members {
		values[i] = m.Value
	}
	return values
}

// Members returns the declared (name, value) pairs in declaration order.
func (c *core[V]) Members() []Member[V] {
	return slices.Clone(c.members)
}

// Choices returns the canonical values rendered as strings, in declaration
// order. Integer sets render decimal. Meant for usage text, prompts, and
// CLI flag listings.
func (c *core[V]) Choices() []string {
	return slices.Clone(c.choices)
}

// Lookup returns the member holding exactly the canonical value v. The
// boolean is false when v is not a member value; no fuzzy matching and no
// error are involved.
func (c *core[V]) Lookup(v V) (Member[V], bool) {
	pos, ok := c.byValue[v]
	if !ok {
		return Member[V]{}, false
	}
	return c.members[pos], true
}
