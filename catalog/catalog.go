package catalog

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/sXperfect/gunz-utils/enum"
)

// Errors returned by the catalog accessors. Match with errors.Is.
var (
	// ErrNotDefined is returned when a catalog holds no enumeration with
	// the requested name.
	ErrNotDefined = errors.New("enumeration not defined")

	// ErrKindMismatch is returned when the requested enumeration exists
	// but was declared with the other kind.
	ErrKindMismatch = errors.New("enumeration has a different kind")
)

// document is the root of a catalog file.
type document struct {
	Enums []declaration `yaml:"enums"`
}

// declaration is one enumeration in a catalog document.
type declaration struct {
	Name    string         `yaml:"name"`
	Kind    string         `yaml:"kind"` // "string" or "int"
	Members []memberDecl   `yaml:"members"`
	Aliases map[string]any `yaml:"aliases,omitempty"`
	Default any            `yaml:"default,omitempty"`
}

// memberDecl is one (name, value) pair of a declared enumeration.
type memberDecl struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

// Catalog holds the enumerations built from one document. Every set is
// fully validated and immutable by the time the Catalog exists; a document
// with any invalid declaration yields no Catalog at all.
type Catalog struct {
	order   []string
	strings map[string]*enum.StringSet[string]
	ints    map[string]*enum.IntSet[int64]
}

// Parse builds a Catalog from YAML data. Declaration problems surface
// immediately, including the *enum.DefinitionError cases such as aliases
// targeting values that are not members.
func Parse(data []byte, opts ...Option) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog document: %w", err)
	}
	if len(doc.Enums) == 0 {
		return nil, errors.New("catalog document declares no enumerations")
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	cat := &Catalog{
		strings: make(map[string]*enum.StringSet[string]),
		ints:    make(map[string]*enum.IntSet[int64]),
	}
	for _, decl := range doc.Enums {
		if decl.Name == "" {
			return nil, errors.New("enumeration declared without a name")
		}
		if _, ok := cat.strings[decl.Name]; ok {
			return nil, fmt.Errorf("enumeration %s declared twice", decl.Name)
		}
		if _, ok := cat.ints[decl.Name]; ok {
			return nil, fmt.Errorf("enumeration %s declared twice", decl.Name)
		}

		switch decl.Kind {
		case "string":
			set, err := buildString(decl, s.enumOpts)
			if err != nil {
				return nil, fmt.Errorf("enumeration %s: %w", decl.Name, err)
			}
			cat.strings[decl.Name] = set
		case "int":
			set, err := buildInt(decl, s.enumOpts)
			if err != nil {
				return nil, fmt.Errorf("enumeration %s: %w", decl.Name, err)
			}
			cat.ints[decl.Name] = set
		default:
			return nil, fmt.Errorf("enumeration %s: unknown kind %q (want string or int)",
				decl.Name, decl.Kind)
		}
		cat.order = append(cat.order, decl.Name)
	}
	return cat, nil
}

// Load reads and parses a catalog file from the given path. If the path is
// a directory, it looks for enums.yaml or enums.yml in that directory.
func Load(path string, opts ...Option) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	catalogPath := path
	if info.IsDir() {
		yamlPath := filepath.Join(path, "enums.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			catalogPath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "enums.yml")
			if _, err := os.Stat(ymlPath); err == nil {
				catalogPath = ymlPath
			} else {
				return nil, fmt.Errorf("no enums.yaml or enums.yml found in %s", path)
			}
		}
	}

	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	cat, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", catalogPath, err)
	}
	return cat, nil
}

// String returns the string enumeration declared under name.
func (c *Catalog) String(name string) (*enum.StringSet[string], error) {
	if set, ok := c.strings[name]; ok {
		return set, nil
	}
	if _, ok := c.ints[name]; ok {
		return nil, fmt.Errorf("%s is declared as int: %w", name, ErrKindMismatch)
	}
	return nil, fmt.Errorf("%s: %w", name, ErrNotDefined)
}

// Int returns the integer enumeration declared under name.
func (c *Catalog) Int(name string) (*enum.IntSet[int64], error) {
	if set, ok := c.ints[name]; ok {
		return set, nil
	}
	if _, ok := c.strings[name]; ok {
		return nil, fmt.Errorf("%s is declared as string: %w", name, ErrKindMismatch)
	}
	return nil, fmt.Errorf("%s: %w", name, ErrNotDefined)
}

// Names returns the enumeration names in document order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.order)
}

// Len returns the number of enumerations in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

func buildString(d declaration, base []enum.Option) (*enum.StringSet[string], error) {
	members := make([]enum.Member[string], len(d.Members))
	for i, m := range d.Members {
		v, ok := m.Value.(string)
		if !ok {
			return nil, fmt.Errorf("member %q: value must be a string, got %T", m.Name, m.Value)
		}
		members[i] = enum.Member[string]{Name: m.Name, Value: v}
	}

	opts := slices.Clone(base)
	if len(d.Aliases) > 0 {
		aliases := make(map[string]string, len(d.Aliases))
		for key, raw := range d.Aliases {
			v, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("alias %q: target must be a string, got %T", key, raw)
			}
			aliases[key] = v
		}
		opts = append(opts, enum.WithAliases(aliases))
	}
	if d.Default != nil {
		v, ok := d.Default.(string)
		if !ok {
			return nil, fmt.Errorf("default: value must be a string, got %T", d.Default)
		}
		opts = append(opts, enum.WithDefault(v))
	}
	return enum.NewString(d.Name, members, opts...)
}

func buildInt(d declaration, base []enum.Option) (*enum.IntSet[int64], error) {
	members := make([]enum.Member[int64], len(d.Members))
	for i, m := range d.Members {
		v, ok := asInt64(m.Value)
		if !ok {
			return nil, fmt.Errorf("member %q: value must be an integer, got %T", m.Name, m.Value)
		}
		members[i] = enum.Member[int64]{Name: m.Name, Value: v}
	}

	opts := slices.Clone(base)
	if len(d.Aliases) > 0 {
		aliases := make(map[string]int64, len(d.Aliases))
		for key, raw := range d.Aliases {
			v, ok := asInt64(raw)
			if !ok {
				return nil, fmt.Errorf("alias %q: target must be an integer, got %T", key, raw)
			}
			aliases[key] = v
		}
		opts = append(opts, enum.WithAliases(aliases))
	}
	if d.Default != nil {
		v, ok := asInt64(d.Default)
		if !ok {
			return nil, fmt.Errorf("default: value must be an integer, got %T", d.Default)
		}
		opts = append(opts, enum.WithDefault(v))
	}
	return enum.NewInt(d.Name, members, opts...)
}

// asInt64 accepts the integer shapes yaml.v3 produces when decoding
// scalars into any.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}
