package enum

import (
	"strings"
	"time"
)

// lookupIndex is the resolver's view of one enumeration. The three key
// classes are probed in order: direct (lowercased member names, plus
// lowercased values for string sets), alias, then folded. Every key maps to
// a position in the member slice.
//
// The index is built at most once per enumeration, on first resolver use.
// All ambiguity is rejected when the enumeration is defined, so building is
// a pure function of the immutable member set and alias table and cannot
// fail; concurrent first callers are serialized by sync.OnceValue and see
// only the completed index.
type lookupIndex struct {
	direct map[string]int
	alias  map[string]int
	folded map[string]int
}

// buildIndex derives the lookup index from the definition. Invoked through
// c.index, never directly.
func (c *core[V]) buildIndex() *lookupIndex {
	start := time.Now()
	idx := &lookupIndex{
		direct: make(map[string]int, 2*len(c.members)),
		alias:  make(map[string]int, len(c.textAliases)),
		folded: make(map[string]int, 2*len(c.members)+len(c.textAliases)),
	}

	for i, m := range c.members {
		idx.direct[strings.ToLower(m.Name)] = i
		putFolded(idx.folded, c.folder.fold(m.Name), i)
		if c.valueKey != nil {
			v := c.valueKey(m.Value)
			idx.direct[strings.ToLower(v)] = i
			putFolded(idx.folded, c.folder.fold(v), i)
		}
	}
	for key, i := range c.textAliases {
		idx.alias[key] = i
		putFolded(idx.folded, c.folder.fold(key), i)
	}

	c.metrics.recordBuild()
	if c.logger != nil {
		c.logger.Debug("enum: built lookup index",
			"enum", c.name,
			"direct", len(idx.direct),
			"alias", len(idx.alias),
			"folded", len(idx.folded),
			"elapsed", time.Since(start))
	}
	return idx
}

// putFolded inserts a folded key. Empty folds never index: an input that is
// all separators can only match a member whose literal value is empty, and
// that match happens on the direct path.
func putFolded(m map[string]int, key string, i int) {
	if key == "" {
		return
	}
	m[key] = i
}
