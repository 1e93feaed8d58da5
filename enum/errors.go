package enum

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the resolvers. Wrap sites add the enumeration
// name and input details; match with errors.Is.
var (
	// ErrNotFound is returned when an input matches no member name, member
	// value, or alias of the enumeration.
	ErrNotFound = errors.New("no matching member")

	// ErrInputTooLong is returned when resolver input exceeds the
	// enumeration's byte limit. The check runs before any other processing,
	// so oversized inputs are rejected without being lowercased, folded, or
	// compared. The error never echoes the input.
	ErrInputTooLong = errors.New("input too long")
)

// DefinitionError reports an invalid enumeration declaration: no members,
// duplicate names or values, keys that would resolve to two different
// members, an alias targeting a value that is not a member, or a bad
// option. NewString and NewInt return it, MustString and MustInt panic
// with it; either way the enumeration never becomes usable.
type DefinitionError struct {
	// Enum is the declared name of the enumeration.
	Enum string

	// Detail describes what is wrong with the declaration.
	Detail string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("enum %s: invalid definition: %s", e.Enum, e.Detail)
}

func defErrorf(enum, format string, args ...any) *DefinitionError {
	return &DefinitionError{Enum: enum, Detail: fmt.Sprintf(format, args...)}
}
