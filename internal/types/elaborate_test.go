package types_test

import (
	"testing"

	"avncore/internal/ast"
	"avncore/internal/sym"
	"avncore/internal/types"
)

func namedType(name string) *ast.NamedType {
	return &ast.NamedType{Name: sym.Name{Ident: name}}
}

func TestLookupType_Primitives(t *testing.T) {
	el := types.NewElaborator(sym.NewRegistry(), ast.NewProgram())

	cases := []struct {
		surface string
		want    string
	}{
		{"Unit", "Unit"},
		{"Bool", "Bool"},
		{"Int", "Int32"},   // alias, §4.B
		{"Int64", "Int64"},
		{"Float", "Float64"}, // alias, §4.B
		{"Str", "Str"},
		{"BigInt", "BigInt"},
	}
	for _, c := range cases {
		got, err := el.LookupType(namedType(c.surface), sym.Root())
		if err != nil {
			t.Fatalf("LookupType(%s): unexpected error %v", c.surface, err)
		}
		if got.String() != c.want {
			t.Errorf("LookupType(%s) = %s, want %s", c.surface, got.String(), c.want)
		}
	}
}

func TestLookupType_EnumResolvesInCurrentNamespaceBeforeRoot(t *testing.T) {
	reg := sym.NewRegistry()
	b := ast.NewBuilder()
	b.AddEnum(sym.Root(), &ast.EnumDecl{Name: "Color", Public: true})
	b.AddEnum(sym.NS("Shapes"), &ast.EnumDecl{Name: "Color", Public: false})
	prog := b.Build()

	el := types.NewElaborator(reg, prog)

	got, err := el.LookupType(namedType("Color"), sym.NS("Shapes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref, ok := got.(*types.EnumRef)
	if !ok {
		t.Fatalf("got %T, want *types.EnumRef", got)
	}
	if !ref.Enum.Namespace().Equal(sym.NS("Shapes")) {
		t.Errorf("resolved to namespace %s, want Shapes (nearest enclosing wins over root)", ref.Enum.Namespace())
	}
}

func TestLookupType_QualifiedNameDoesNotFallBackToRoot(t *testing.T) {
	reg := sym.NewRegistry()
	b := ast.NewBuilder()
	b.AddEnum(sym.Root(), &ast.EnumDecl{Name: "Color", Public: true})
	prog := b.Build()

	el := types.NewElaborator(reg, prog)

	qualified := &ast.NamedType{Name: sym.Name{Qualifier: sym.NS("Shapes"), Ident: "Color"}}
	_, err := el.LookupType(qualified, sym.Root())
	if err == nil {
		t.Fatalf("expected an UndefinedTypeError, got none")
	}
	if _, ok := err.(*types.UndefinedTypeError); !ok {
		t.Fatalf("got error of type %T, want *types.UndefinedTypeError", err)
	}
}

func TestLookupType_Undefined(t *testing.T) {
	el := types.NewElaborator(sym.NewRegistry(), ast.NewProgram())
	_, err := el.LookupType(namedType("Nope"), sym.Root())
	if err == nil {
		t.Fatalf("expected an error for an undefined type name")
	}
}

func TestLookupType_TupleArrowApp(t *testing.T) {
	el := types.NewElaborator(sym.NewRegistry(), ast.NewProgram())

	tuple := &ast.TupleType{Elems: []ast.TypeExpr{namedType("Int"), namedType("Bool")}}
	got, err := el.LookupType(tuple, sym.Root())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "(Int32, Bool)" {
		t.Errorf("got %s, want (Int32, Bool)", got.String())
	}

	arrow := &ast.ArrowType{Params: []ast.TypeExpr{namedType("Int")}, Result: namedType("Bool")}
	got, err = el.LookupType(arrow, sym.Root())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "(Int32) -> Bool" {
		t.Errorf("got %s, want (Int32) -> Bool", got.String())
	}

	app := &ast.AppType{Base: namedType("Array"), Arg: namedType("Int")}
	if _, err := el.LookupType(app, sym.Root()); err == nil {
		t.Fatalf("expected Array to be undefined as a named type (it is not registered as a primitive name)")
	}
}

func TestEqual(t *testing.T) {
	if !types.Equal(types.TInt32, types.TInt32) {
		t.Errorf("Equal(TInt32, TInt32) = false, want true")
	}
	if types.Equal(types.TInt32, types.TInt64) {
		t.Errorf("Equal(TInt32, TInt64) = true, want false")
	}
	tup1 := &types.Tuple{Elems: []types.Type{types.TInt32, types.TBool}}
	tup2 := &types.Tuple{Elems: []types.Type{types.TInt32, types.TBool}}
	if !types.Equal(tup1, tup2) {
		t.Errorf("Equal(tup1, tup2) = false, want true (structural equality)")
	}
}
