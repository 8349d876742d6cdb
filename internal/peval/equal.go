package peval

import "avncore/internal/ir2"

// EqResult is the three-valued outcome of the syntactic equality oracle
// (component G).
type EqResult int

const (
	Unknown EqResult = iota
	Equal
	NotEq
)

// SyntacticEqual decides whether e1 and e2 must be equal, must not be
// equal, or the relationship cannot be determined without further
// evaluation — the decision procedure backing `==`/`!=` folding in §4.F.
func SyntacticEqual(e1, e2 ir2.Expr, env Env) EqResult {
	switch a := e1.(type) {
	case ir2.Unit:
		if _, ok := e2.(ir2.Unit); ok {
			return Equal
		}
		return eqByKindMismatch(e1, e2)
	case ir2.True:
		if _, ok := e2.(ir2.True); ok {
			return Equal
		}
		if _, ok := e2.(ir2.False); ok {
			return NotEq
		}
		return eqByKindMismatch(e1, e2)
	case ir2.False:
		if _, ok := e2.(ir2.False); ok {
			return Equal
		}
		if _, ok := e2.(ir2.True); ok {
			return NotEq
		}
		return eqByKindMismatch(e1, e2)
	case ir2.Str:
		if b, ok := e2.(ir2.Str); ok {
			if a.Val == b.Val {
				return Equal
			}
			return NotEq
		}
		return eqByKindMismatch(e1, e2)
	}

	if la, ok := asIntLit(e1); ok {
		if lb, ok2 := asIntLit(e2); ok2 {
			if la.width != lb.width {
				return Unknown
			}
			if la.val == lb.val {
				return Equal
			}
			return NotEq
		}
		return eqByKindMismatch(e1, e2)
	}

	if ta, ok := e1.(ir2.Tuple); ok {
		if tb, ok2 := e2.(ir2.Tuple); ok2 {
			return eqTuple(ta, tb, env)
		}
		return eqByKindMismatch(e1, e2)
	}

	if tagA, ok := e1.(ir2.Tag); ok {
		if tagB, ok2 := e2.(ir2.Tag); ok2 {
			if tagA.TagName != tagB.TagName {
				return NotEq
			}
			return SyntacticEqual(tagA.Payload, tagB.Payload, env)
		}
		return eqByKindMismatch(e1, e2)
	}

	// Two occurrences of the same Var, by name, within the same
	// environment frame resolve identically.
	if va, ok := e1.(ir2.Var); ok {
		if vb, ok2 := e2.(ir2.Var); ok2 && va.Name == vb.Name {
			return Equal
		}
	}

	return Unknown
}

func eqTuple(a, b ir2.Tuple, env Env) EqResult {
	if len(a.Elements) != len(b.Elements) {
		return NotEq
	}
	allEqual := true
	for i := range a.Elements {
		switch SyntacticEqual(a.Elements[i], b.Elements[i], env) {
		case NotEq:
			return NotEq
		case Unknown:
			allEqual = false
		}
	}
	if allEqual {
		return Equal
	}
	return Unknown
}

// eqByKindMismatch reports NotEq for two literals of provably disjoint
// value kinds (e.g. Unit vs Str), else Unknown.
func eqByKindMismatch(e1, e2 ir2.Expr) EqResult {
	if isLiteralKind(e1) && isLiteralKind(e2) {
		return NotEq
	}
	return Unknown
}

func isLiteralKind(e ir2.Expr) bool {
	switch e.(type) {
	case ir2.Unit, ir2.True, ir2.False, ir2.Str, ir2.Int8, ir2.Int16, ir2.Int32, ir2.Int64:
		return true
	default:
		return false
	}
}
