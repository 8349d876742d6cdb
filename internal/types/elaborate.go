package types

import (
	"fmt"

	"avncore/internal/ast"
	"avncore/internal/sym"
	"avncore/internal/token"
)

// UndefinedTypeError is reported when a named type cannot be resolved to
// either a primitive or a declared enum (§4.B).
type UndefinedTypeError struct {
	Name sym.Name
	Pos  token.Position
}

func (e *UndefinedTypeError) Error() string {
	return fmt.Sprintf("%s: undefined type %s", e.Pos, e.Name)
}

var primitives = map[string]Type{
	"Unit":    TUnit,
	"Bool":    TBool,
	"Char":    TChar,
	"Int8":    TInt8,
	"Int16":   TInt16,
	"Int32":   TInt32,
	"Int64":   TInt64,
	"Int":     TInt32, // alias, §4.B
	"Float32": TFloat32,
	"Float64": TFloat64,
	"Float":   TFloat64, // alias, §4.B
	"BigInt":  TBigInt,
	"Str":     TStr,
}

// Elaborator maps surface type syntax onto internal type terms (component
// B). It shares the program's symbol registry so that enum references are
// the same *sym.Symbol the Enum/Tag Disambiguator (§4.D) produces.
type Elaborator struct {
	Registry *sym.Registry
	Program  ast.Program
}

// NewElaborator returns a type elaborator over prog, interning enum symbols
// through reg.
func NewElaborator(reg *sym.Registry, prog ast.Program) *Elaborator {
	return &Elaborator{Registry: reg, Program: prog}
}

// LookupType elaborates surface type syntax t as it occurs lexically within
// currentNS, per §4.B.
func (el *Elaborator) LookupType(t ast.TypeExpr, currentNS sym.Namespace) (Type, error) {
	switch t := t.(type) {
	case nil:
		return nil, fmt.Errorf("missing type annotation")
	case *ast.NamedType:
		return el.lookupNamed(t, currentNS)
	case *ast.TupleType:
		elems := make([]Type, len(t.Elems))
		for i, te := range t.Elems {
			elem, err := el.LookupType(te, currentNS)
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return &Tuple{Elems: elems}, nil
	case *ast.ArrowType:
		params := make([]Type, len(t.Params))
		for i, pe := range t.Params {
			p, err := el.LookupType(pe, currentNS)
			if err != nil {
				return nil, err
			}
			params[i] = p
		}
		result, err := el.LookupType(t.Result, currentNS)
		if err != nil {
			return nil, err
		}
		return &Arrow{Params: params, Result: result}, nil
	case *ast.AppType:
		base, err := el.LookupType(t.Base, currentNS)
		if err != nil {
			return nil, err
		}
		arg, err := el.LookupType(t.Arg, currentNS)
		if err != nil {
			return nil, err
		}
		return &App{Base: base, Arg: arg}, nil
	default:
		return nil, fmt.Errorf("unhandled type expression %T", t)
	}
}

func (el *Elaborator) lookupNamed(t *ast.NamedType, currentNS sym.Namespace) (Type, error) {
	name := t.Name

	// Qualified names resolve only within the namespace they name — no
	// fallback to the root namespace.
	if name.IsQualified() {
		if enum := el.findEnum(name.Qualifier, name.Ident); enum != nil {
			return el.enumRef(enum, name.Qualifier), nil
		}
		return nil, &UndefinedTypeError{Name: name, Pos: t.NamePos}
	}

	if prim, ok := primitives[name.Ident]; ok {
		return prim, nil
	}

	// Unqualified resolution order: current namespace's enums, then the
	// root namespace's enums.
	if enum := el.findEnum(currentNS, name.Ident); enum != nil {
		return el.enumRef(enum, currentNS), nil
	}
	if !currentNS.IsRoot() {
		if enum := el.findEnum(sym.Root(), name.Ident); enum != nil {
			return el.enumRef(enum, sym.Root()), nil
		}
	}
	return nil, &UndefinedTypeError{Name: name, Pos: t.NamePos}
}

func (el *Elaborator) findEnum(ns sym.Namespace, ident string) *ast.EnumDecl {
	contents := el.Program.Namespace(ns)
	for _, d := range contents.Enums {
		if d.Name == ident {
			return d
		}
	}
	return nil
}

func (el *Elaborator) enumRef(decl *ast.EnumDecl, ns sym.Namespace) Type {
	s := el.Registry.MkEnumSym(ns, decl.Name, decl.NamePos, decl.Public)
	kind := EnumKindSum
	if len(decl.Cases) == 1 && decl.Cases[0].Payload == nil {
		kind = EnumKindSingleton
	}
	return &EnumRef{Enum: s, Kind: kind}
}
