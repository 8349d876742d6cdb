// Package diag implements the Diagnostics & Logging ambient component
// (§4.I): user-facing diagnostic accumulation and structured phase logging.
package diag

import (
	"fmt"

	"avncore/internal/sym"
	"avncore/internal/token"
)

// Tag is the machine-readable error tag set from §6.
type Tag int

const (
	UndefinedDef Tag = iota
	UndefinedTable
	UndefinedType
	UndefinedTag
	AmbiguousRef
	AmbiguousTag
	InaccessibleDef
	InaccessibleEnum
	UnresolvedVariable
	UnresolvedReference
	IllegalType
)

func (t Tag) String() string {
	switch t {
	case UndefinedDef:
		return "UndefinedDef"
	case UndefinedTable:
		return "UndefinedTable"
	case UndefinedType:
		return "UndefinedType"
	case UndefinedTag:
		return "UndefinedTag"
	case AmbiguousRef:
		return "AmbiguousRef"
	case AmbiguousTag:
		return "AmbiguousTag"
	case InaccessibleDef:
		return "InaccessibleDef"
	case InaccessibleEnum:
		return "InaccessibleEnum"
	case UnresolvedVariable:
		return "UnresolvedVariable"
	case UnresolvedReference:
		return "UnresolvedReference"
	case IllegalType:
		return "IllegalType"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// isInternal reports whether t is a compiler invariant violation: always fatal, never a
// normal user-facing diagnostic (§4.F "Load/Store boxing nodes").
func (t Tag) isInternal() bool {
	return t == UnresolvedVariable || t == UnresolvedReference || t == IllegalType
}

// Error is a user-facing diagnostic: a malformed or ambiguous reference in
// the program under resolution. Errors are accumulated in a Bag rather than
// short-circuited, matching the teacher's types.Error{Pos, Msg} shape
// generalized to carry a Tag.
type Error struct {
	Tag       Tag
	Pos       token.Position
	Name      string
	Namespace sym.Namespace
	Msg       string
}

func (e *Error) Error() string {
	if e.Namespace.IsRoot() {
		return fmt.Sprintf("%s: %s: %s (%s)", e.Pos, e.Tag, e.Msg, e.Name)
	}
	return fmt.Sprintf("%s: %s: %s (%s, in %s)", e.Pos, e.Tag, e.Msg, e.Name, e.Namespace)
}

// Internal is a compiler invariant violation: fatal, terminates the pass it
// occurs in, and is rendered distinctly from a user Error.
type Internal struct {
	Tag   Tag
	Pos   token.Position
	Msg   string
	Trace string // a short rendering of the offending construct
}

func (e *Internal) Error() string {
	return fmt.Sprintf("internal error at %s: %s: %s\n%s", e.Pos, e.Tag, e.Msg, e.Trace)
}

// NewError builds a user diagnostic for tag occurring at pos, naming name
// within ns, with a human-readable message.
func NewError(tag Tag, pos token.Position, ns sym.Namespace, name, msg string) *Error {
	return &Error{Tag: tag, Pos: pos, Name: name, Namespace: ns, Msg: msg}
}

// NewInternal builds a fatal compiler-invariant-violation diagnostic.
func NewInternal(tag Tag, pos token.Position, msg, trace string) *Internal {
	return &Internal{Tag: tag, Pos: pos, Msg: msg, Trace: trace}
}
