package enum

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// isSeparator reports whether r is dropped entirely during folding, so that
// "dark-blue", "dark_blue", "Dark Blue" and "DARKBLUE" share one folded form.
func isSeparator(r rune) bool {
	return r == '-' || r == '_' || r == ' '
}

// Fold normalizes s the way the last resolution stage does: lowercased,
// with the separator runes "-", "_" and " " removed entirely. Accent
// folding is a per-set option and is not applied here. Useful for callers
// that index their own tables alongside an enumeration.
func Fold(s string) string {
	return folder{}.fold(s)
}

// folder computes the folded form used by the final resolution stage and by
// the ambiguity checks at definition time.
type folder struct {
	accents bool
}

// fold lowercases s and strips separator runes. With accent folding enabled
// it first decomposes the input and drops combining marks, so "Élodie"
// folds to "elodie".
func (f folder) fold(s string) string {
	if f.accents {
		s = removeAccents(s)
	}
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// removeAccents strips combining marks: NFD decomposition, drop the marks,
// recompose. The chain carries per-call state, so it is built here instead
// of being shared across goroutines.
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
