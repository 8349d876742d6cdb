package peval_test

import (
	"testing"

	"avncore/internal/ir2"
	"avncore/internal/peval"
	"avncore/internal/token"
	"avncore/internal/types"
)

func i32(v int32) ir2.Expr { return ir2.NewInt32(token.Position{}, types.TInt32, v) }

func TestEval_ArithmeticFolding(t *testing.T) {
	ev := peval.NewEvaluator(nil)

	cases := []struct {
		name string
		e    ir2.Expr
		want int32
	}{
		{"add", ir2.NewBinary(token.Position{}, types.TInt32, ir2.OpAdd, i32(2), i32(3)), 5},
		{"sub", ir2.NewBinary(token.Position{}, types.TInt32, ir2.OpSub, i32(7), i32(4)), 3},
		{"mul-identity-right", ir2.NewBinary(token.Position{}, types.TInt32, ir2.OpMul, i32(9), i32(1)), 9},
		{"add-identity-left", ir2.NewBinary(token.Position{}, types.TInt32, ir2.OpAdd, i32(0), i32(9)), 9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ev.Eval(c.e, peval.NewEnv())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			i, ok := got.(ir2.Int32)
			if !ok || i.Val != c.want {
				t.Errorf("got %#v, want Int32(%d)", got, c.want)
			}
		})
	}
}

func TestEval_DivisionByZeroResidualizes(t *testing.T) {
	ev := peval.NewEvaluator(nil)
	e := ir2.NewBinary(token.Position{}, types.TInt32, ir2.OpDiv, i32(5), i32(0))
	got, err := ev.Eval(e, peval.NewEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(ir2.Binary); !ok {
		t.Fatalf("got %T, want a residual ir2.Binary (division by zero must not fold)", got)
	}
}

func TestEval_ShortCircuitOr(t *testing.T) {
	ev := peval.NewEvaluator(nil)

	residualVar := ir2.Var{Name: "side_effecting_flag"}
	e := ir2.NewBinary(token.Position{}, types.TBool, ir2.OpOr, ir2.NewTrue(token.Position{}, types.TBool), residualVar)

	got, err := ev.Eval(e, peval.NewEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(ir2.True); !ok {
		t.Fatalf("got %#v, want True without evaluating the right operand", got)
	}
}

func TestEval_LetReportsUnboundVariableInBoundForm(t *testing.T) {
	ev := peval.NewEvaluator(nil)
	residual := ir2.Var{Name: "unbound_in_this_test_deliberately"}

	letExpr := ir2.Let{Name: "x", Bound: residual, Body: i32(1)}
	_, err := ev.Eval(letExpr, peval.NewEnv())
	if err == nil {
		t.Fatalf("expected an UnresolvedVariable error for the deliberately-unbound residual")
	}
}

func TestEval_SubtractingIdenticalResidualYieldsZero(t *testing.T) {
	ev := peval.NewEvaluator(nil)
	residual := ir2.Tag{TagName: "Box", Payload: i32(5)}
	e := ir2.NewBinary(token.Position{}, types.TInt32, ir2.OpSub, residual, residual)

	got, err := ev.Eval(e, peval.NewEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := got.(ir2.Int32)
	if !ok || i.Val != 0 {
		t.Errorf("got %#v, want Int32(0)", got)
	}
}

func TestEval_RemainderByOneYieldsZeroForResidual(t *testing.T) {
	ev := peval.NewEvaluator(nil)
	residual := ir2.Tag{TagName: "Box", Payload: i32(5)}
	e := ir2.NewBinary(token.Position{}, types.TInt32, ir2.OpRem, residual, i32(1))

	got, err := ev.Eval(e, peval.NewEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := got.(ir2.Int32)
	if !ok || i.Val != 0 {
		t.Errorf("got %#v, want Int32(0)", got)
	}
}

func TestEval_IffOnMismatchedLiteralsFoldsToFalse(t *testing.T) {
	ev := peval.NewEvaluator(nil)
	e := ir2.NewBinary(token.Position{}, types.TBool, ir2.OpIff,
		ir2.NewTrue(token.Position{}, types.TBool), ir2.NewFalse(token.Position{}, types.TBool))

	got, err := ev.Eval(e, peval.NewEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(ir2.False); !ok {
		t.Fatalf("got %#v, want False", got)
	}
}

func TestEval_IffDesugarsInsteadOfStayingAResidualIffNode(t *testing.T) {
	ev := peval.NewEvaluator(nil)
	// A residual comparison that cannot fold, standing in for an operand
	// whose boolean value isn't known yet.
	residualBool := ir2.NewBinary(token.Position{}, types.TBool, ir2.OpLt,
		ir2.Tag{TagName: "Box", Payload: i32(1)}, ir2.Tag{TagName: "Box", Payload: i32(2)})

	e := ir2.NewBinary(token.Position{}, types.TBool, ir2.OpIff,
		ir2.NewTrue(token.Position{}, types.TBool), residualBool)

	got, err := ev.Eval(e, peval.NewEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, ok := got.(ir2.Binary)
	if !ok || b.Op == ir2.OpIff {
		t.Fatalf("got %#v, want the Iff desugared into And/Or/Implies instead of surviving as a residual Iff node", got)
	}
}

func TestSyntacticEqual(t *testing.T) {
	env := peval.NewEnv()
	cases := []struct {
		name string
		a, b ir2.Expr
		want peval.EqResult
	}{
		{"equal ints", i32(3), i32(3), peval.Equal},
		{"unequal ints", i32(3), i32(4), peval.NotEq},
		{"true vs false", ir2.NewTrue(token.Position{}, types.TBool), ir2.NewFalse(token.Position{}, types.TBool), peval.NotEq},
		{"unit vs unit", ir2.NewUnit(token.Position{}, types.TUnit), ir2.NewUnit(token.Position{}, types.TUnit), peval.Equal},
		{"var vs ref unknown", ir2.Var{Name: "x"}, ir2.Ref{}, peval.Unknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := peval.SyntacticEqual(c.a, c.b, env); got != c.want {
				t.Errorf("SyntacticEqual(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestCanonicalize_IsIdempotentAndSortsOperands(t *testing.T) {
	// (3 + 1) + 2, flattened and sorted, should equal (1 + 2) + 3 in
	// structural form regardless of surface association/order.
	a := ir2.NewBinary(token.Position{}, types.TInt32, ir2.OpAdd,
		ir2.NewBinary(token.Position{}, types.TInt32, ir2.OpAdd, i32(3), i32(1)), i32(2))
	b := ir2.NewBinary(token.Position{}, types.TInt32, ir2.OpAdd,
		i32(1), ir2.NewBinary(token.Position{}, types.TInt32, ir2.OpAdd, i32(2), i32(3)))

	ca := peval.Canonicalize(a)
	cb := peval.Canonicalize(b)

	caAgain, ok := ca.(ir2.Binary)
	if !ok {
		t.Fatalf("got %T, want ir2.Binary", ca)
	}
	if !exprEqualStructurally(t, ca, cb) {
		t.Errorf("Canonicalize(a) and Canonicalize(b) should agree on operand order: %#v vs %#v", ca, cb)
	}
	if !exprEqualStructurally(t, ca, peval.Canonicalize(caAgain)) {
		t.Errorf("Canonicalize is not idempotent")
	}
}

func exprEqualStructurally(t *testing.T, a, b ir2.Expr) bool {
	t.Helper()
	return flattenInts(t, a) == flattenInts(t, b)
}

// flattenInts renders the int32 leaves of a +-chain as a digit string, in
// left-to-right tree order, enough to compare two canonicalized chains
// without importing irprint.
func flattenInts(t *testing.T, e ir2.Expr) string {
	t.Helper()
	var leaves []int32
	var walk func(ir2.Expr)
	walk = func(e ir2.Expr) {
		switch e := e.(type) {
		case ir2.Binary:
			walk(e.E1)
			walk(e.E2)
		case ir2.Int32:
			leaves = append(leaves, e.Val)
		}
	}
	walk(e)
	s := ""
	for _, v := range leaves {
		s += string(rune('0' + v))
	}
	return s
}
