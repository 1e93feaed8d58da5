package safepath

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrEmptyFilename reports that sanitization left nothing usable.
	ErrEmptyFilename = errors.New("filename is empty after sanitization")

	// ErrUnsafeReplacement reports a replacement string that itself
	// contains characters the sanitizer would reject.
	ErrUnsafeReplacement = errors.New("replacement contains unsafe characters")

	// ErrUnsafePath reports a join that would land outside the base
	// directory.
	ErrUnsafePath = errors.New("path escapes the base directory")
)

// maxFilenameBytes is the path component limit shared by the common
// filesystems.
const maxFilenameBytes = 255

// reservedNames are the Windows device names that are invalid as filenames
// regardless of extension.
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

type settings struct {
	replacement string
}

// Option configures SanitizeFilename.
type Option func(*settings)

// WithReplacement sets the string substituted for unsafe characters, "_"
// by default. The replacement must itself consist of safe characters; an
// empty replacement deletes unsafe characters instead of substituting
// them.
func WithReplacement(r string) Option {
	return func(s *settings) {
		s.replacement = r
	}
}

// SanitizeFilename reduces name to a single path component that is safe
// to create on the common filesystems. Directory components are
// discarded, characters outside letters, digits, "_", "." and "-" are
// substituted with the replacement, replacement runs are collapsed, and
// leading or trailing dots and replacements are trimmed. Windows reserved
// device names such as CON and LPT1, matched against the part before the
// first dot, are defused with a replacement prefix. The result is capped
// at 255 bytes without splitting a multi-byte character.
//
// A name with no safe characters left fails with ErrEmptyFilename.
func SanitizeFilename(name string, opts ...Option) (string, error) {
	s := settings{replacement: "_"}
	for _, opt := range opts {
		opt(&s)
	}
	for _, r := range s.replacement {
		if !isSafeRune(r) {
			return "", fmt.Errorf("replacement %q: %w", s.replacement, ErrUnsafeReplacement)
		}
	}

	// Only the final component matters. Both separator styles are
	// stripped so Windows-style input cannot smuggle directories through
	// on other platforms.
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if isSafeRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteString(s.replacement)
		}
	}
	name = b.String()
	if s.replacement != "" {
		name = collapseRuns(name, s.replacement)
	}
	name = strings.Trim(name, s.replacement+".")
	if name == "" {
		return "", ErrEmptyFilename
	}

	if IsReserved(name) {
		prefix := s.replacement
		if prefix == "" {
			prefix = "_"
		}
		name = prefix + name
	}

	// The prefix counts against the limit, so reserved names cannot push
	// the result past it.
	if len(name) > maxFilenameBytes {
		cut := maxFilenameBytes
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	return name, nil
}

// IsReserved reports whether name collides with a Windows reserved device
// name. Windows matches the part before the first dot case-insensitively,
// so "CON", "con.txt" and "CON.tar.gz" are all reserved.
func IsReserved(name string) bool {
	root, _, _ := strings.Cut(name, ".")
	return reservedNames[strings.ToUpper(root)]
}

// Join joins elem onto base like filepath.Join and verifies that the
// cleaned result stays under base, guarding against ".." traversal in
// untrusted fragments. Escapes fail with ErrUnsafePath.
func Join(base string, elem ...string) (string, error) {
	joined := filepath.Join(append([]string{base}, elem...)...)
	rel, err := filepath.Rel(base, joined)
	if err != nil {
		return "", fmt.Errorf("%s: %w", joined, ErrUnsafePath)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", joined, ErrUnsafePath)
	}
	return joined, nil
}

// isSafeRune reports whether r may appear in a sanitized filename:
// letters, digits, "_", "." and "-".
func isSafeRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '-'
}

// collapseRuns squeezes consecutive occurrences of rep into a single one.
func collapseRuns(s, rep string) string {
	double := rep + rep
	for strings.Contains(s, double) {
		s = strings.ReplaceAll(s, double, rep)
	}
	return s
}
