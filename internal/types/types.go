// Package types defines the internal type term (§3) and the Type Elaborator
// (component B, §4.B) that maps surface type syntax onto it.
package types

import (
	"fmt"
	"strings"

	"avncore/internal/sym"
)

// Type is an internal type term. Types are compared structurally, never by
// identity — see Equal.
type Type interface {
	String() string
	equal(Type) bool
}

// PrimKind enumerates the primitive type variants that carry no further
// structure of their own.
type PrimKind int

const (
	Unit PrimKind = iota
	Bool
	Char
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	BigInt
	Str
)

func (k PrimKind) String() string {
	switch k {
	case Unit:
		return "Unit"
	case Bool:
		return "Bool"
	case Char:
		return "Char"
	case Int8:
		return "Int8"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case BigInt:
		return "BigInt"
	case Str:
		return "Str"
	default:
		return fmt.Sprintf("PrimKind(%d)", int(k))
	}
}

// Primitive is a primitive type term.
type Primitive struct{ Kind PrimKind }

func (p *Primitive) String() string { return p.Kind.String() }
func (p *Primitive) equal(other Type) bool {
	o, ok := other.(*Primitive)
	return ok && o.Kind == p.Kind
}

// Singletons for the primitives that need no further parameters.
var (
	TUnit    = &Primitive{Kind: Unit}
	TBool    = &Primitive{Kind: Bool}
	TChar    = &Primitive{Kind: Char}
	TInt8    = &Primitive{Kind: Int8}
	TInt16   = &Primitive{Kind: Int16}
	TInt32   = &Primitive{Kind: Int32}
	TInt64   = &Primitive{Kind: Int64}
	TFloat32 = &Primitive{Kind: Float32}
	TFloat64 = &Primitive{Kind: Float64}
	TBigInt  = &Primitive{Kind: BigInt}
	TStr     = &Primitive{Kind: Str}
)

// Array is the primitive array-of-T type term.
type Array struct{ Elem Type }

func (a *Array) String() string { return "Array<" + a.Elem.String() + ">" }
func (a *Array) equal(other Type) bool {
	o, ok := other.(*Array)
	return ok && a.Elem.equal(o.Elem)
}

// Native is a primitive handle for a host-provided foreign type (e.g. a
// runtime-native cell or resource) that this phase does not interpret
// further.
type Native struct{ Name string }

func (n *Native) String() string { return "Native<" + n.Name + ">" }
func (n *Native) equal(other Type) bool {
	o, ok := other.(*Native)
	return ok && n.Name == o.Name
}

// Ref is a mutable reference-cell type term, e.g. the target of the
// language's `ref`/`!`/`:=` primitives.
type Ref struct{ Elem Type }

func (r *Ref) String() string { return "Ref<" + r.Elem.String() + ">" }
func (r *Ref) equal(other Type) bool {
	o, ok := other.(*Ref)
	return ok && r.Elem.equal(o.Elem)
}

// EnumKind distinguishes how an enum's cases should be represented
// downstream; this phase stores it but never interprets it.
type EnumKind int

const (
	// EnumKindSum is a normal closed sum type with one or more cases.
	EnumKindSum EnumKind = iota
	// EnumKindSingleton is an enum with exactly one nullary case, often
	// erased to Unit by later phases.
	EnumKindSingleton
)

// EnumRef is a reference to a user-declared enum, parametrized by zero or
// more type arguments.
type EnumRef struct {
	Enum     *sym.Symbol
	Kind     EnumKind
	TypeArgs []Type
}

func (e *EnumRef) String() string {
	s := e.Enum.Name().String()
	if len(e.TypeArgs) == 0 {
		return s
	}
	parts := make([]string, len(e.TypeArgs))
	for i, a := range e.TypeArgs {
		parts[i] = a.String()
	}
	return s + "<" + strings.Join(parts, ", ") + ">"
}

func (e *EnumRef) equal(other Type) bool {
	o, ok := other.(*EnumRef)
	if !ok || e.Enum != o.Enum || len(e.TypeArgs) != len(o.TypeArgs) {
		return false
	}
	for i, a := range e.TypeArgs {
		if !a.equal(o.TypeArgs[i]) {
			return false
		}
	}
	return true
}

// Tuple is an ordered sequence of component type terms.
type Tuple struct{ Elems []Type }

func (t *Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *Tuple) equal(other Type) bool {
	o, ok := other.(*Tuple)
	if !ok || len(t.Elems) != len(o.Elems) {
		return false
	}
	for i, e := range t.Elems {
		if !e.equal(o.Elems[i]) {
			return false
		}
	}
	return true
}

// Arrow is a (possibly multi-argument, curried) function type.
type Arrow struct {
	Params []Type
	Result Type
}

func (a *Arrow) String() string {
	parts := make([]string, len(a.Params))
	for i, p := range a.Params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + a.Result.String()
}

func (a *Arrow) equal(other Type) bool {
	o, ok := other.(*Arrow)
	if !ok || len(a.Params) != len(o.Params) || !a.Result.equal(o.Result) {
		return false
	}
	for i, p := range a.Params {
		if !p.equal(o.Params[i]) {
			return false
		}
	}
	return true
}

// App is a type constructor applied to a type argument. Higher-kinded
// inference is not performed here (§4.B).
type App struct {
	Base Type
	Arg  Type
}

func (a *App) String() string { return a.Base.String() + "<" + a.Arg.String() + ">" }
func (a *App) equal(other Type) bool {
	o, ok := other.(*App)
	return ok && a.Base.equal(o.Base) && a.Arg.equal(o.Arg)
}

// Equal reports whether a and b are the same type term, structurally.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.equal(b)
}

// IsFixedWidthInt reports whether k admits the arithmetic identity rewrites of
// §4.F (integer widths only — BigInt arithmetic is never folded, per
// DESIGN.md).
func (k PrimKind) IsFixedWidthInt() bool {
	switch k {
	case Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}
