package ast

import (
	"strings"

	"avncore/internal/sym"
	"avncore/internal/token"
)

// TypeExpr is surface type syntax, as produced by the (external) parser.
// The Type Elaborator (§4.B) maps a TypeExpr to an internal type term.
type TypeExpr interface {
	Pos() token.Position
	typeExprNode()
}

// NamedType is a (possibly qualified) reference to a type constructor: a
// built-in primitive name, or a user-declared enum.
type NamedType struct {
	Name    sym.Name
	NamePos token.Position
}

func (t *NamedType) Pos() token.Position { return t.NamePos }
func (t *NamedType) typeExprNode()       {}
func (t *NamedType) String() string       { return t.Name.String() }

// TupleType is a surface tuple type: (T1, T2, ...).
type TupleType struct {
	Elems    []TypeExpr
	TuplePos token.Position
}

func (t *TupleType) Pos() token.Position { return t.TuplePos }
func (t *TupleType) typeExprNode()       {}

// ArrowType is a surface function type: (T1, ..., Tn) -> R.
type ArrowType struct {
	Params   []TypeExpr
	Result   TypeExpr
	ArrowPos token.Position
}

func (t *ArrowType) Pos() token.Position { return t.ArrowPos }
func (t *ArrowType) typeExprNode()       {}

// AppType is a surface type application: Base<Arg>.
type AppType struct {
	Base   TypeExpr
	Arg    TypeExpr
	AppPos token.Position
}

func (t *AppType) Pos() token.Position { return t.AppPos }
func (t *AppType) typeExprNode()       {}

// DumpType renders a TypeExpr as a single line, used in diagnostics.
func DumpType(t TypeExpr) string {
	var sb strings.Builder
	dumpType(&sb, t)
	return sb.String()
}

func dumpType(sb *strings.Builder, t TypeExpr) {
	switch t := t.(type) {
	case nil:
		sb.WriteString("<none>")
	case *NamedType:
		sb.WriteString(t.Name.String())
	case *TupleType:
		sb.WriteString("(")
		for i, e := range t.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			dumpType(sb, e)
		}
		sb.WriteString(")")
	case *ArrowType:
		sb.WriteString("(")
		for i, p := range t.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			dumpType(sb, p)
		}
		sb.WriteString(") -> ")
		dumpType(sb, t.Result)
	case *AppType:
		dumpType(sb, t.Base)
		sb.WriteString("<")
		dumpType(sb, t.Arg)
		sb.WriteString(">")
	}
}
