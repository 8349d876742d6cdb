package ir2_test

import (
	"testing"

	"avncore/internal/ir2"
	"avncore/internal/token"
	"avncore/internal/types"
)

func TestIsValue_LiteralsAndClosureAreValues(t *testing.T) {
	values := []ir2.Expr{
		ir2.NewUnit(token.Position{}, types.TUnit),
		ir2.NewTrue(token.Position{}, types.TBool),
		ir2.NewFalse(token.Position{}, types.TBool),
		ir2.NewInt32(token.Position{}, types.TInt32, 7),
		ir2.NewStr(token.Position{}, types.TStr, "hi"),
		ir2.Closure{Formals: nil, Body: ir2.NewUnit(token.Position{}, types.TUnit)},
	}
	for _, v := range values {
		if !ir2.IsValue(v) {
			t.Errorf("IsValue(%#v) = false, want true", v)
		}
	}
}

func TestIsValue_ResidualFormsAreNotValues(t *testing.T) {
	residuals := []ir2.Expr{
		ir2.Var{Name: "x"},
		ir2.Ref{},
		ir2.NewBinary(token.Position{}, types.TInt32, ir2.OpAdd,
			ir2.NewInt32(token.Position{}, types.TInt32, 1), ir2.Var{Name: "x"}),
	}
	for _, r := range residuals {
		if ir2.IsValue(r) {
			t.Errorf("IsValue(%#v) = true, want false", r)
		}
	}
}

func TestIsValue_TagIsValueOnlyWhenPayloadIsValue(t *testing.T) {
	valueTag := ir2.Tag{TagName: "Some", Payload: ir2.NewInt32(token.Position{}, types.TInt32, 1)}
	if !ir2.IsValue(valueTag) {
		t.Errorf("a tag over a literal payload should be a value")
	}

	residualTag := ir2.Tag{TagName: "Some", Payload: ir2.Var{Name: "x"}}
	if ir2.IsValue(residualTag) {
		t.Errorf("a tag over a residual payload should not be a value")
	}
}

func TestIsValue_TupleIsValueOnlyWhenEveryElementIs(t *testing.T) {
	allValues := ir2.Tuple{Elements: []ir2.Expr{
		ir2.NewInt32(token.Position{}, types.TInt32, 1),
		ir2.NewTrue(token.Position{}, types.TBool),
	}}
	if !ir2.IsValue(allValues) {
		t.Errorf("a tuple of literals should be a value")
	}

	mixed := ir2.Tuple{Elements: []ir2.Expr{
		ir2.NewInt32(token.Position{}, types.TInt32, 1),
		ir2.Var{Name: "x"},
	}}
	if ir2.IsValue(mixed) {
		t.Errorf("a tuple with a residual element should not be a value")
	}
}

func TestNewBinary_CarriesPositionTypeAndOperands(t *testing.T) {
	pos := token.Position{File: "f.av", Line: 3, Column: 5}
	l := ir2.NewInt32(token.Position{}, types.TInt32, 1)
	r := ir2.NewInt32(token.Position{}, types.TInt32, 2)
	b := ir2.NewBinary(pos, types.TInt32, ir2.OpAdd, l, r)

	if b.Pos() != pos {
		t.Errorf("Pos() = %v, want %v", b.Pos(), pos)
	}
	if b.Type() != types.TInt32 {
		t.Errorf("Type() = %v, want Int32", b.Type())
	}
	if b.Op != ir2.OpAdd || b.E1 != l || b.E2 != r {
		t.Errorf("NewBinary did not preserve Op/E1/E2")
	}
}
