package ast

import (
	"avncore/internal/sym"
	"avncore/internal/token"
)

// Node is the root interface implemented by every AST node.
type Node interface {
	Pos() token.Position
}

// Expr is the named, pre-resolution expression AST: the parser's output,
// before any name occurrence has been replaced with a resolved symbol.
type Expr interface {
	Node
	exprNode()
}

// UnaryOp enumerates the surface unary operators.
type UnaryOp int

const (
	OpLogicalNot UnaryOp = iota
	OpPlus
	OpMinus
	OpBitwiseNegate
)

// BinaryOp enumerates the surface binary operators.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpLt
	OpGt
	OpLe
	OpGe
	OpEq
	OpNeq
	OpAnd
	OpOr
	OpImplies
	OpIff
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
)

// VarExpr is a reference to a lexically bound variable.
type VarExpr struct {
	Name string
	P    token.Position
}

func (e *VarExpr) Pos() token.Position { return e.P }
func (e *VarExpr) exprNode()           {}

// WildExpr is the wildcard pattern `_`.
type WildExpr struct{ P token.Position }

func (e *WildExpr) Pos() token.Position { return e.P }
func (e *WildExpr) exprNode()           {}

// DefExpr is a reference to a top-level definition, by name. The name may
// be qualified or unqualified; see §4.E for the lookup rules.
type DefExpr struct {
	Ref sym.Name
	P   token.Position
}

func (e *DefExpr) Pos() token.Position { return e.P }
func (e *DefExpr) exprNode()           {}

// HoleExpr is a `?hole` placeholder.
type HoleExpr struct {
	Name string
	P    token.Position
}

func (e *HoleExpr) Pos() token.Position { return e.P }
func (e *HoleExpr) exprNode()           {}

// TagExpr constructs (or, absent a payload, references the constructor of)
// an enum case. EnumQualifier is nil when the tag is unqualified.
type TagExpr struct {
	EnumQualifier *sym.Namespace
	Tag           string
	Payload       Expr // nil when absent from the surface syntax
	P             token.Position
}

func (e *TagExpr) Pos() token.Position { return e.P }
func (e *TagExpr) exprNode()           {}

// LambdaExpr is a surface lambda abstraction.
type LambdaExpr struct {
	Params []string
	Body   Expr
	P      token.Position
}

func (e *LambdaExpr) Pos() token.Position { return e.P }
func (e *LambdaExpr) exprNode()           {}

// ApplyExpr is a surface (possibly curried) function application.
type ApplyExpr struct {
	Callee Expr
	Args   []Expr
	P      token.Position
}

func (e *ApplyExpr) Pos() token.Position { return e.P }
func (e *ApplyExpr) exprNode()           {}

// UnaryExpr applies a unary operator.
type UnaryExpr struct {
	Op UnaryOp
	X  Expr
	P  token.Position
}

func (e *UnaryExpr) Pos() token.Position { return e.P }
func (e *UnaryExpr) exprNode()           {}

// BinaryExpr applies a binary operator.
type BinaryExpr struct {
	Op   BinaryOp
	L, R Expr
	P    token.Position
}

func (e *BinaryExpr) Pos() token.Position { return e.P }
func (e *BinaryExpr) exprNode()           {}

// LetExpr binds Bound to Name within Body.
type LetExpr struct {
	Name  string
	Bound Expr
	Body  Expr
	P     token.Position
}

func (e *LetExpr) Pos() token.Position { return e.P }
func (e *LetExpr) exprNode()           {}

// IfExpr is a conditional expression.
type IfExpr struct {
	Cond, Then, Else Expr
	P                token.Position
}

func (e *IfExpr) Pos() token.Position { return e.P }
func (e *IfExpr) exprNode()           {}

// TupleExpr constructs a tuple.
type TupleExpr struct {
	Elems []Expr
	P     token.Position
}

func (e *TupleExpr) Pos() token.Position { return e.P }
func (e *TupleExpr) exprNode()           {}

// GetTupleIndexExpr projects one component out of a tuple.
type GetTupleIndexExpr struct {
	X     Expr
	Index int
	P     token.Position
}

func (e *GetTupleIndexExpr) Pos() token.Position { return e.P }
func (e *GetTupleIndexExpr) exprNode()           {}

// SetExpr constructs a set literal.
type SetExpr struct {
	Elems []Expr
	P     token.Position
}

func (e *SetExpr) Pos() token.Position { return e.P }
func (e *SetExpr) exprNode()           {}

// CheckTagExpr tests whether a value was constructed with a given tag.
type CheckTagExpr struct {
	Tag string
	X   Expr
	P   token.Position
}

func (e *CheckTagExpr) Pos() token.Position { return e.P }
func (e *CheckTagExpr) exprNode()           {}

// GetTagValueExpr projects the payload out of a tagged value.
type GetTagValueExpr struct {
	X Expr
	P token.Position
}

func (e *GetTagValueExpr) Pos() token.Position { return e.P }
func (e *GetTagValueExpr) exprNode()           {}

// LitKind enumerates the surface literal forms.
type LitKind int

const (
	LitUnit LitKind = iota
	LitTrue
	LitFalse
	LitInt8
	LitInt16
	LitInt32
	LitInt64
	LitBigInt
	LitFloat32
	LitFloat64
	LitChar
	LitStr
)

// LiteralExpr is a constant of one of the surface literal forms.
type LiteralExpr struct {
	Kind  LitKind
	Int   int64  // Int8/16/32/64
	Float float64 // Float32/64
	Str   string  // Str, BigInt (decimal text), Char (single rune)
	P     token.Position
}

func (e *LiteralExpr) Pos() token.Position { return e.P }
func (e *LiteralExpr) exprNode()           {}

// ErrorExpr and MatchErrorExpr denote the two surface error-producing forms;
// neither is folded by the partial evaluator (§4.F).
type ErrorExpr struct{ P token.Position }

func (e *ErrorExpr) Pos() token.Position { return e.P }
func (e *ErrorExpr) exprNode()           {}

type MatchErrorExpr struct{ P token.Position }

func (e *MatchErrorExpr) Pos() token.Position { return e.P }
func (e *MatchErrorExpr) exprNode()           {}
