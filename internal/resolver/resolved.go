package resolver

import (
	"avncore/internal/ast"
	"avncore/internal/sym"
	"avncore/internal/token"
	"avncore/internal/types"
)

// RExpr is the post-resolution expression tree: every name occurrence from
// ast.Expr has been replaced by a resolved symbol (§3 "Program
// (post-resolution)").
type RExpr interface {
	Pos() token.Position
	rNode()
}

// RVar is a reference to a lexically bound variable, now carrying the
// symbol minted for its binding occurrence.
type RVar struct {
	Sym *sym.Symbol
	P   token.Position
}

func (e *RVar) Pos() token.Position { return e.P }
func (e *RVar) rNode()              {}

// RWild is the wildcard pattern `_`.
type RWild struct{ P token.Position }

func (e *RWild) Pos() token.Position { return e.P }
func (e *RWild) rNode()              {}

// RDef is a resolved reference to a top-level definition or hook.
type RDef struct {
	Sym *sym.Symbol
	P   token.Position
}

func (e *RDef) Pos() token.Position { return e.P }
func (e *RDef) rNode()              {}

// RHole is a resolved `?hole` occurrence.
type RHole struct {
	Sym *sym.Symbol
	P   token.Position
}

func (e *RHole) Pos() token.Position { return e.P }
func (e *RHole) rNode()              {}

// RTag constructs a tagged value. The resolver always fills Payload: a
// nullary reference to a Unit-payload case gets a synthesized unit literal
// (§4.E), and a nullary non-Unit tag is eta-expanded into an RLambda whose
// body is this node.
type RTag struct {
	Enum    *sym.Symbol
	Tag     string
	Payload RExpr
	P       token.Position
}

func (e *RTag) Pos() token.Position { return e.P }
func (e *RTag) rNode()              {}

// RLambda is a resolved lambda abstraction, its formals bound to fresh
// symbols.
type RLambda struct {
	Params []*sym.Symbol
	Body   RExpr
	P      token.Position
}

func (e *RLambda) Pos() token.Position { return e.P }
func (e *RLambda) rNode()              {}

// RApply is a resolved function application.
type RApply struct {
	Callee RExpr
	Args   []RExpr
	P      token.Position
}

func (e *RApply) Pos() token.Position { return e.P }
func (e *RApply) rNode()              {}

// RUnary applies a unary operator to a resolved operand.
type RUnary struct {
	Op ast.UnaryOp
	X  RExpr
	P  token.Position
}

func (e *RUnary) Pos() token.Position { return e.P }
func (e *RUnary) rNode()              {}

// RBinary applies a binary operator to two resolved operands.
type RBinary struct {
	Op   ast.BinaryOp
	L, R RExpr
	P    token.Position
}

func (e *RBinary) Pos() token.Position { return e.P }
func (e *RBinary) rNode()              {}

// RLet binds Bound to a fresh symbol for Name within Body.
type RLet struct {
	Sym   *sym.Symbol
	Bound RExpr
	Body  RExpr
	P     token.Position
}

func (e *RLet) Pos() token.Position { return e.P }
func (e *RLet) rNode()              {}

// RIf is a resolved conditional.
type RIf struct {
	Cond, Then, Else RExpr
	P                token.Position
}

func (e *RIf) Pos() token.Position { return e.P }
func (e *RIf) rNode()              {}

// RTuple constructs a resolved tuple.
type RTuple struct {
	Elems []RExpr
	P     token.Position
}

func (e *RTuple) Pos() token.Position { return e.P }
func (e *RTuple) rNode()              {}

// RGetTupleIndex projects one component out of a resolved tuple.
type RGetTupleIndex struct {
	X     RExpr
	Index int
	P     token.Position
}

func (e *RGetTupleIndex) Pos() token.Position { return e.P }
func (e *RGetTupleIndex) rNode()              {}

// RSet constructs a resolved set literal.
type RSet struct {
	Elems []RExpr
	P     token.Position
}

func (e *RSet) Pos() token.Position { return e.P }
func (e *RSet) rNode()              {}

// RCheckTag tests whether a resolved value was constructed with a given
// tag.
type RCheckTag struct {
	Tag string
	X   RExpr
	P   token.Position
}

func (e *RCheckTag) Pos() token.Position { return e.P }
func (e *RCheckTag) rNode()              {}

// RGetTagValue projects the payload out of a resolved tagged value.
type RGetTagValue struct {
	X RExpr
	P token.Position
}

func (e *RGetTagValue) Pos() token.Position { return e.P }
func (e *RGetTagValue) rNode()              {}

// RLiteral is a resolved constant; resolution never changes a literal's
// value, only its position in the tree.
type RLiteral struct {
	Kind  ast.LitKind
	Int   int64
	Float float64
	Str   string
	P     token.Position
}

func (e *RLiteral) Pos() token.Position { return e.P }
func (e *RLiteral) rNode()              {}

// RError and RMatchError are the resolved forms of the two surface
// error-producing expressions.
type RError struct{ P token.Position }

func (e *RError) Pos() token.Position { return e.P }
func (e *RError) rNode()              {}

type RMatchError struct{ P token.Position }

func (e *RMatchError) Pos() token.Position { return e.P }
func (e *RMatchError) rNode()              {}

// RParam is a resolved, elaborated formal parameter.
type RParam struct {
	Sym  *sym.Symbol
	Type types.Type
}

// RDefDecl is a resolved top-level definition.
type RDefDecl struct {
	Sym    *sym.Symbol
	Params []RParam
	Return types.Type
	Body   RExpr // nil for a hook
}

// RCase is a resolved enum case.
type RCase struct {
	Sym     *sym.Symbol
	Payload types.Type // nil means Unit payload
}

// REnumDecl is a resolved enum declaration.
type REnumDecl struct {
	Sym   *sym.Symbol
	Cases []RCase
}

// RConstraintDecl is a resolved constraint or property expression.
type RConstraintDecl struct {
	Sym  *sym.Symbol
	Body RExpr
}

// RLatticeDecl is a resolved lattice declaration. Fixed-point computation
// over it is out of scope (§1 Non-goals); only its name and element type
// are resolved here.
type RLatticeDecl struct {
	Sym  *sym.Symbol
	Elem types.Type
}

// RIndexDecl is a resolved named index over a key/value type pair.
type RIndexDecl struct {
	Sym            *sym.Symbol
	KeyType, Value types.Type
}

// RTableDecl is a resolved named table with a fixed column-type schema.
type RTableDecl struct {
	Sym     *sym.Symbol
	Columns []types.Type
}

// RNamespaceContents is everything resolved directly within one namespace.
type RNamespaceContents struct {
	Defs        []*RDefDecl
	Enums       []*REnumDecl
	Lattices    []*RLatticeDecl
	Indices     []*RIndexDecl
	Tables      []*RTableDecl
	Constraints []*RConstraintDecl
	Properties  []*RConstraintDecl
}

// RProgram is the post-resolution program: same namespace-multimap shape as
// ast.Program, but every occurrence has been resolved (§3).
type RProgram struct {
	Namespaces map[string]*RNamespaceContents
}

// NewRProgram returns an empty post-resolution program.
func NewRProgram() *RProgram {
	return &RProgram{Namespaces: make(map[string]*RNamespaceContents)}
}

func (p *RProgram) slot(ns sym.Namespace) *RNamespaceContents {
	key := ns.String()
	c, ok := p.Namespaces[key]
	if !ok {
		c = &RNamespaceContents{}
		p.Namespaces[key] = c
	}
	return c
}
