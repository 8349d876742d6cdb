package ast

import "avncore/internal/token"

// Decl is implemented by every kind of top-level declaration a namespace
// can contain.
type Decl interface {
	Node
	DeclName() string
	IsPublic() bool
}

// Param is a formal parameter of a definition or lambda, with an optional
// surface type annotation.
type Param struct {
	Name string
	Type TypeExpr // nil if uninferred at the surface level
}

// DefDecl is a top-level definition: `[pub] def name(params) : ret = body`.
type DefDecl struct {
	Name     string
	Public   bool
	Params   []Param
	Return   TypeExpr // nil if omitted
	Body     Expr
	NamePos  token.Position
}

func (d *DefDecl) Pos() token.Position { return d.NamePos }
func (d *DefDecl) DeclName() string    { return d.Name }
func (d *DefDecl) IsPublic() bool      { return d.Public }

// EnumCase is a single case declared by an enum.
type EnumCase struct {
	Name    string
	Payload TypeExpr // nil means the case carries a Unit payload
	NamePos token.Position
}

// EnumDecl declares a closed sum type and its cases.
type EnumDecl struct {
	Name       string
	Public     bool
	TypeParams []string
	Cases      []EnumCase
	NamePos    token.Position
}

func (d *EnumDecl) Pos() token.Position { return d.NamePos }
func (d *EnumDecl) DeclName() string    { return d.Name }
func (d *EnumDecl) IsPublic() bool      { return d.Public }

// LatticeDecl declares a lattice over a given element type. Fixed-point
// computation over lattices is explicitly out of scope (§1 Non-goals); this
// core only resolves the declaration's name and element type.
type LatticeDecl struct {
	Name    string
	Public  bool
	Elem    TypeExpr
	NamePos token.Position
}

func (d *LatticeDecl) Pos() token.Position { return d.NamePos }
func (d *LatticeDecl) DeclName() string    { return d.Name }
func (d *LatticeDecl) IsPublic() bool      { return d.Public }

// IndexDecl declares a named index over a key/value type pair.
type IndexDecl struct {
	Name      string
	Public    bool
	KeyType   TypeExpr
	ValueType TypeExpr
	NamePos   token.Position
}

func (d *IndexDecl) Pos() token.Position { return d.NamePos }
func (d *IndexDecl) DeclName() string    { return d.Name }
func (d *IndexDecl) IsPublic() bool      { return d.Public }

// TableDecl declares a named table with a fixed column-type schema.
type TableDecl struct {
	Name    string
	Public  bool
	Columns []TypeExpr
	NamePos token.Position
}

func (d *TableDecl) Pos() token.Position { return d.NamePos }
func (d *TableDecl) DeclName() string    { return d.Name }
func (d *TableDecl) IsPublic() bool      { return d.Public }

// ConstraintDecl declares a named boolean-valued constraint expression.
type ConstraintDecl struct {
	Name    string
	Public  bool
	Body    Expr
	NamePos token.Position
}

func (d *ConstraintDecl) Pos() token.Position { return d.NamePos }
func (d *ConstraintDecl) DeclName() string    { return d.Name }
func (d *ConstraintDecl) IsPublic() bool      { return d.Public }

// PropertyDecl declares a named property expression (e.g. for property-based
// testing downstream); resolved the same way as a ConstraintDecl but kept
// distinct since the two are independent namespace-level declaration kinds.
type PropertyDecl struct {
	Name    string
	Public  bool
	Body    Expr
	NamePos token.Position
}

func (d *PropertyDecl) Pos() token.Position { return d.NamePos }
func (d *PropertyDecl) DeclName() string    { return d.Name }
func (d *PropertyDecl) IsPublic() bool      { return d.Public }

// NamedExprDecl is a named top-level expression with no surface declaration
// keyword (e.g. bare `name = expr`). The Expression Resolver (§4.E) resolves
// these into a non-public definition with no parameters and no return type;
// it attaches no type scheme or effect to them.
type NamedExprDecl struct {
	Name    string
	Body    Expr
	NamePos token.Position
}

func (d *NamedExprDecl) Pos() token.Position { return d.NamePos }
func (d *NamedExprDecl) DeclName() string    { return d.Name }
func (d *NamedExprDecl) IsPublic() bool      { return false }

// HookDecl registers an externally-provided definition: it resolves like a
// normal DefDecl but has no source body.
type HookDecl struct {
	Name    string
	Type    TypeExpr
	NamePos token.Position
}

func (d *HookDecl) Pos() token.Position { return d.NamePos }
func (d *HookDecl) DeclName() string    { return d.Name }
func (d *HookDecl) IsPublic() bool      { return true }

// NamespaceContents is everything declared directly within one namespace
// (not including descendant namespaces).
type NamespaceContents struct {
	Defs        []*DefDecl
	Enums       []*EnumDecl
	Lattices    []*LatticeDecl
	Indices     []*IndexDecl
	Tables      []*TableDecl
	Constraints []*ConstraintDecl
	Properties  []*PropertyDecl
	Named       []*NamedExprDecl
	Hooks       []*HookDecl
}

// AllDecls returns every declaration in the namespace, in a stable order
// (defs, enums, lattices, indices, tables, constraints, properties, named
// expressions, hooks), used by deterministic passes such as the Continuation-
// Interface Emitter (§4.H) and the incremental cache's canonical
// serialization (§4.K).
func (c *NamespaceContents) AllDecls() []Decl {
	var out []Decl
	for _, d := range c.Defs {
		out = append(out, d)
	}
	for _, d := range c.Enums {
		out = append(out, d)
	}
	for _, d := range c.Lattices {
		out = append(out, d)
	}
	for _, d := range c.Indices {
		out = append(out, d)
	}
	for _, d := range c.Tables {
		out = append(out, d)
	}
	for _, d := range c.Constraints {
		out = append(out, d)
	}
	for _, d := range c.Properties {
		out = append(out, d)
	}
	for _, d := range c.Named {
		out = append(out, d)
	}
	for _, d := range c.Hooks {
		out = append(out, d)
	}
	return out
}
