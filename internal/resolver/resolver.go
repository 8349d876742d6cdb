// Package resolver implements the Enum/Tag Disambiguator (component D) and
// the Expression Resolver (component E): it walks the named AST produced by
// the (external) parser and replaces every name occurrence with a resolved
// symbol.
package resolver

import (
	"avncore/internal/ast"
	"avncore/internal/diag"
	"avncore/internal/sym"
	"avncore/internal/token"
	"avncore/internal/types"
)

// Resolver is the component E driver. It shares a single *sym.Registry and
// diag.Bag across an entire program, per the single-owner rule in §5.
type Resolver struct {
	Registry      *sym.Registry
	Program       ast.Program
	Elaborator    *types.Elaborator
	Disambiguator *Disambiguator
	Bag           *diag.Bag
}

// NewResolver returns a resolver over prog, minting symbols through reg.
func NewResolver(reg *sym.Registry, prog ast.Program) *Resolver {
	return &Resolver{
		Registry:      reg,
		Program:       prog,
		Elaborator:    types.NewElaborator(reg, prog),
		Disambiguator: NewDisambiguator(prog),
		Bag:           diag.NewBag(),
	}
}

// ResolveProgram resolves every declaration in every namespace, accumulating
// diagnostics in r.Bag. It returns the partial result even when errors were
// recorded, since a failed pass still recovers as much structure as
// possible (§7).
func (r *Resolver) ResolveProgram() *RProgram {
	out := NewRProgram()
	r.Program.Range(func(ns sym.Namespace, c *ast.NamespaceContents) bool {
		slot := out.slot(ns)
		for _, d := range c.Defs {
			slot.Defs = append(slot.Defs, r.resolveDef(ns, d))
		}
		for _, d := range c.Hooks {
			slot.Defs = append(slot.Defs, r.resolveHook(ns, d))
		}
		for _, d := range c.Named {
			slot.Defs = append(slot.Defs, r.resolveNamedExpr(ns, d))
		}
		for _, d := range c.Enums {
			slot.Enums = append(slot.Enums, r.resolveEnum(ns, d))
		}
		for _, d := range c.Lattices {
			slot.Lattices = append(slot.Lattices, r.resolveLattice(ns, d))
		}
		for _, d := range c.Indices {
			slot.Indices = append(slot.Indices, r.resolveIndex(ns, d))
		}
		for _, d := range c.Tables {
			slot.Tables = append(slot.Tables, r.resolveTable(ns, d))
		}
		for _, d := range c.Constraints {
			slot.Constraints = append(slot.Constraints, r.resolveNamedBody(ns, d.Name, d.Body, d.NamePos))
		}
		for _, d := range c.Properties {
			slot.Properties = append(slot.Properties, r.resolveNamedBody(ns, d.Name, d.Body, d.NamePos))
		}
		return true
	})
	return out
}

func (r *Resolver) elaborate(t ast.TypeExpr, ns sym.Namespace) types.Type {
	if t == nil {
		return nil
	}
	elaborated, err := r.Elaborator.LookupType(t, ns)
	if err != nil {
		r.Bag.Add(typeErrorToDiag(err, ns))
		return nil
	}
	return elaborated
}

func typeErrorToDiag(err error, ns sym.Namespace) *diag.Error {
	if ute, ok := err.(*types.UndefinedTypeError); ok {
		return diag.NewError(diag.UndefinedType, ute.Pos, ns, ute.Name.String(), "undefined type")
	}
	return diag.NewError(diag.IllegalType, token.Position{}, ns, "", err.Error())
}

func (r *Resolver) resolveDef(ns sym.Namespace, d *ast.DefDecl) *RDefDecl {
	defSym := r.Registry.MkDefnSym(ns, d.Name, d.NamePos, d.Public)
	scope := NewScope(nil)

	params := make([]RParam, len(d.Params))
	for i, p := range d.Params {
		paramSym := r.Registry.FreshVarSym(p.Name)
		scope.Bind(p.Name, paramSym)
		params[i] = RParam{Sym: paramSym, Type: r.elaborate(p.Type, ns)}
	}

	return &RDefDecl{
		Sym:    defSym,
		Params: params,
		Return: r.elaborate(d.Return, ns),
		Body:   r.resolveExpr(d.Body, scope, ns),
	}
}

func (r *Resolver) resolveHook(ns sym.Namespace, d *ast.HookDecl) *RDefDecl {
	defSym := r.Registry.MkDefnSym(ns, d.Name, d.NamePos, true)
	return &RDefDecl{Sym: defSym, Return: r.elaborate(d.Type, ns)}
}

func (r *Resolver) resolveNamedExpr(ns sym.Namespace, d *ast.NamedExprDecl) *RDefDecl {
	defSym := r.Registry.MkDefnSym(ns, d.Name, d.NamePos, false)
	return &RDefDecl{Sym: defSym, Body: r.resolveExpr(d.Body, NewScope(nil), ns)}
}

func (r *Resolver) resolveNamedBody(ns sym.Namespace, name string, body ast.Expr, pos token.Position) *RConstraintDecl {
	defSym := r.Registry.MkDefnSym(ns, name, pos, false)
	return &RConstraintDecl{Sym: defSym, Body: r.resolveExpr(body, NewScope(nil), ns)}
}

func (r *Resolver) resolveEnum(ns sym.Namespace, d *ast.EnumDecl) *REnumDecl {
	enumSym := r.Registry.MkEnumSym(ns, d.Name, d.NamePos, d.Public)
	cases := make([]RCase, len(d.Cases))
	for i, c := range d.Cases {
		cases[i] = RCase{
			Sym:     r.Registry.MkTagSym(ns, d.Name, c.Name, c.NamePos),
			Payload: r.elaborate(c.Payload, ns),
		}
	}
	return &REnumDecl{Sym: enumSym, Cases: cases}
}

func (r *Resolver) resolveLattice(ns sym.Namespace, d *ast.LatticeDecl) *RLatticeDecl {
	return &RLatticeDecl{
		Sym:  r.Registry.MkDefnSym(ns, d.Name, d.NamePos, d.Public),
		Elem: r.elaborate(d.Elem, ns),
	}
}

func (r *Resolver) resolveIndex(ns sym.Namespace, d *ast.IndexDecl) *RIndexDecl {
	return &RIndexDecl{
		Sym:     r.Registry.MkDefnSym(ns, d.Name, d.NamePos, d.Public),
		KeyType: r.elaborate(d.KeyType, ns),
		Value:   r.elaborate(d.ValueType, ns),
	}
}

func (r *Resolver) resolveTable(ns sym.Namespace, d *ast.TableDecl) *RTableDecl {
	cols := make([]types.Type, len(d.Columns))
	for i, c := range d.Columns {
		cols[i] = r.elaborate(c, ns)
	}
	return &RTableDecl{Sym: r.Registry.MkDefnSym(ns, d.Name, d.NamePos, d.Public), Columns: cols}
}

// resolveExpr walks e per §4.E, resolving every name occurrence against
// scope (lexical locals) and ns (the enclosing namespace for unqualified
// top-level lookups).
func (r *Resolver) resolveExpr(e ast.Expr, scope *Scope, ns sym.Namespace) RExpr {
	switch e := e.(type) {
	case nil:
		return nil
	case *ast.VarExpr:
		return r.resolveVar(e, scope)
	case *ast.WildExpr:
		return &RWild{P: e.P}
	case *ast.DefExpr:
		return r.resolveDefRef(e, ns)
	case *ast.HoleExpr:
		return &RHole{Sym: r.Registry.MkHoleSym(ns, e.Name, e.P), P: e.P}
	case *ast.TagExpr:
		return r.resolveTag(e, scope, ns)
	case *ast.LambdaExpr:
		inner := NewScope(scope)
		params := make([]*sym.Symbol, len(e.Params))
		for i, name := range e.Params {
			params[i] = r.Registry.FreshVarSym(name)
			inner.Bind(name, params[i])
		}
		return &RLambda{Params: params, Body: r.resolveExpr(e.Body, inner, ns), P: e.P}
	case *ast.ApplyExpr:
		args := make([]RExpr, len(e.Args))
		for i, a := range e.Args {
			args[i] = r.resolveExpr(a, scope, ns)
		}
		return &RApply{Callee: r.resolveExpr(e.Callee, scope, ns), Args: args, P: e.P}
	case *ast.UnaryExpr:
		return &RUnary{Op: e.Op, X: r.resolveExpr(e.X, scope, ns), P: e.P}
	case *ast.BinaryExpr:
		return &RBinary{Op: e.Op, L: r.resolveExpr(e.L, scope, ns), R: r.resolveExpr(e.R, scope, ns), P: e.P}
	case *ast.LetExpr:
		bound := r.resolveExpr(e.Bound, scope, ns)
		inner := NewScope(scope)
		letSym := r.Registry.FreshVarSym(e.Name)
		inner.Bind(e.Name, letSym)
		return &RLet{Sym: letSym, Bound: bound, Body: r.resolveExpr(e.Body, inner, ns), P: e.P}
	case *ast.IfExpr:
		return &RIf{
			Cond: r.resolveExpr(e.Cond, scope, ns),
			Then: r.resolveExpr(e.Then, scope, ns),
			Else: r.resolveExpr(e.Else, scope, ns),
			P:    e.P,
		}
	case *ast.TupleExpr:
		elems := make([]RExpr, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = r.resolveExpr(el, scope, ns)
		}
		return &RTuple{Elems: elems, P: e.P}
	case *ast.GetTupleIndexExpr:
		return &RGetTupleIndex{X: r.resolveExpr(e.X, scope, ns), Index: e.Index, P: e.P}
	case *ast.SetExpr:
		elems := make([]RExpr, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = r.resolveExpr(el, scope, ns)
		}
		return &RSet{Elems: elems, P: e.P}
	case *ast.CheckTagExpr:
		return &RCheckTag{Tag: e.Tag, X: r.resolveExpr(e.X, scope, ns), P: e.P}
	case *ast.GetTagValueExpr:
		return &RGetTagValue{X: r.resolveExpr(e.X, scope, ns), P: e.P}
	case *ast.LiteralExpr:
		return &RLiteral{Kind: e.Kind, Int: e.Int, Float: e.Float, Str: e.Str, P: e.P}
	case *ast.ErrorExpr:
		return &RError{P: e.P}
	case *ast.MatchErrorExpr:
		return &RMatchError{P: e.P}
	default:
		r.Bag.Fail(diag.NewInternal(diag.IllegalType, e.Pos(), "unrecognized expression node", ""))
		return &RWild{P: e.Pos()}
	}
}

func (r *Resolver) resolveVar(e *ast.VarExpr, scope *Scope) RExpr {
	if s := scope.Lookup(e.Name); s != nil {
		return &RVar{Sym: s, P: e.P}
	}
	// A surface Var with no lexical binding violates the "no free Vars
	// outside a binding formal" invariant (§3) — a parser/earlier-phase
	// bug, not a user error.
	r.Bag.Fail(diag.NewInternal(diag.UnresolvedVariable, e.P, "unbound variable "+e.Name, ""))
	return &RWild{P: e.P}
}

func (r *Resolver) resolveDefRef(e *ast.DefExpr, ns sym.Namespace) RExpr {
	if e.Ref.IsQualified() {
		matches := defsNamed(r.Program.Namespace(e.Ref.Qualifier), e.Ref.Ident)
		switch len(matches) {
		case 1:
			m := matches[0]
			if !sym.Accessible(sym.AccessInfo{Namespace: e.Ref.Qualifier, Public: m.public}, ns) {
				r.Bag.Add(diag.NewError(diag.InaccessibleDef, e.P, ns, e.Ref.String(), "definition is not accessible from this namespace"))
				return &RDef{P: e.P}
			}
			return &RDef{Sym: r.Registry.MkDefnSym(e.Ref.Qualifier, m.name, m.pos, m.public), P: e.P}
		case 0:
			r.Bag.Add(diag.NewError(diag.UndefinedDef, e.P, ns, e.Ref.String(), "undefined definition"))
			return &RDef{P: e.P}
		default:
			r.Bag.Add(diag.NewError(diag.AmbiguousRef, e.P, ns, e.Ref.String(), "ambiguous definition"))
			return &RDef{P: e.P}
		}
	}

	curMatches := defsNamed(r.Program.Namespace(ns), e.Ref.Ident)
	if len(curMatches) == 1 {
		m := curMatches[0]
		return &RDef{Sym: r.Registry.MkDefnSym(ns, m.name, m.pos, m.public), P: e.P}
	}
	if len(curMatches) == 0 {
		rootMatches := defsNamed(r.Program.Namespace(sym.Root()), e.Ref.Ident)
		if len(rootMatches) == 1 {
			m := rootMatches[0]
			if !sym.Accessible(sym.AccessInfo{Namespace: sym.Root(), Public: m.public}, ns) {
				r.Bag.Add(diag.NewError(diag.InaccessibleDef, e.P, ns, e.Ref.String(), "definition is not accessible from this namespace"))
				return &RDef{P: e.P}
			}
			return &RDef{Sym: r.Registry.MkDefnSym(sym.Root(), m.name, m.pos, m.public), P: e.P}
		}
		if len(rootMatches) == 0 {
			r.Bag.Add(diag.NewError(diag.UndefinedDef, e.P, ns, e.Ref.String(), "undefined definition"))
			return &RDef{P: e.P}
		}
	}
	r.Bag.Add(diag.NewError(diag.AmbiguousRef, e.P, ns, e.Ref.String(), "ambiguous definition"))
	return &RDef{P: e.P}
}

type defMatch struct {
	name   string
	pos    token.Position
	public bool
}

func defsNamed(c *ast.NamespaceContents, ident string) []defMatch {
	var out []defMatch
	for _, d := range c.Defs {
		if d.Name == ident {
			out = append(out, defMatch{name: d.Name, pos: d.NamePos, public: d.Public})
		}
	}
	for _, d := range c.Hooks {
		if d.Name == ident {
			out = append(out, defMatch{name: d.Name, pos: d.NamePos, public: true})
		}
	}
	return out
}

func (r *Resolver) resolveTag(e *ast.TagExpr, scope *Scope, ns sym.Namespace) RExpr {
	decl, foundNS, err := r.Disambiguator.Find(e.EnumQualifier, e.Tag, ns, e.P)
	if err != nil {
		r.Bag.Add(err.(*diag.Error))
		return &RWild{P: e.P}
	}
	if !sym.Accessible(sym.AccessInfo{Namespace: foundNS, Public: decl.Public}, ns) {
		r.Bag.Add(diag.NewError(diag.InaccessibleEnum, e.P, ns, decl.Name, "enum is not accessible from this namespace"))
		return &RWild{P: e.P}
	}
	enumSym := r.Registry.MkEnumSym(foundNS, decl.Name, decl.NamePos, decl.Public)

	var caseDecl *ast.EnumCase
	for i := range decl.Cases {
		if decl.Cases[i].Name == e.Tag {
			caseDecl = &decl.Cases[i]
			break
		}
	}

	if e.Payload != nil {
		return &RTag{Enum: enumSym, Tag: e.Tag, Payload: r.resolveExpr(e.Payload, scope, ns), P: e.P}
	}
	if caseDecl == nil || caseDecl.Payload == nil {
		// Unit-payload case: synthesize the unit value directly.
		return &RTag{Enum: enumSym, Tag: e.Tag, Payload: &RLiteral{Kind: ast.LitUnit, P: e.P}, P: e.P}
	}
	// Non-unit nullary reference: eta-expand into a one-argument
	// constructor function.
	formal := r.Registry.FreshVarSym("arg")
	return &RLambda{
		Params: []*sym.Symbol{formal},
		Body:   &RTag{Enum: enumSym, Tag: e.Tag, Payload: &RVar{Sym: formal, P: e.P}, P: e.P},
		P:      e.P,
	}
}
