package peval

import (
	"avncore/internal/ir2"
	"avncore/internal/token"
	"avncore/internal/types"
)

// intLit is a width-tagged view over the four fixed-width integer literal
// node kinds, used to implement the arithmetic folding rules of §4.F
// uniformly across widths instead of one duplicated arm per width.
type intLit struct {
	width int // 8, 16, 32, or 64
	val   int64
}

func asIntLit(e ir2.Expr) (intLit, bool) {
	switch e := e.(type) {
	case ir2.Int8:
		return intLit{8, int64(e.Val)}, true
	case ir2.Int16:
		return intLit{16, int64(e.Val)}, true
	case ir2.Int32:
		return intLit{32, int64(e.Val)}, true
	case ir2.Int64:
		return intLit{64, e.Val}, true
	default:
		return intLit{}, false
	}
}

// rebuild constructs the literal node for l's width, truncating val to that
// width's two's-complement range — the "per-width rewrite implemented once"
// Open Question resolution (§9).
func rebuild(l intLit, val int64, e ir2.Expr) ir2.Expr {
	switch l.width {
	case 8:
		return ir2.NewInt8(e.Pos(), e.Type(), int8(val))
	case 16:
		return ir2.NewInt16(e.Pos(), e.Type(), int16(val))
	case 32:
		return ir2.NewInt32(e.Pos(), e.Type(), int32(val))
	default:
		return ir2.NewInt64(e.Pos(), e.Type(), val)
	}
}

func (ev *Evaluator) evalUnary(e ir2.Unary, env Env) (ir2.Expr, error) {
	x, err := ev.Eval(e.E, env)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case ir2.OpLogicalNot:
		switch x.(type) {
		case ir2.True:
			return ir2.NewFalse(e.Pos(), e.Type()), nil
		case ir2.False:
			return ir2.NewTrue(e.Pos(), e.Type()), nil
		}
	case ir2.OpPlus:
		return x, nil
	case ir2.OpMinus:
		if l, ok := asIntLit(x); ok {
			return rebuild(l, -l.val, x), nil
		}
	case ir2.OpBitwiseNegate:
		if l, ok := asIntLit(x); ok {
			return rebuild(l, ^l.val, x), nil
		}
	}
	e.E = x
	return e, nil
}

func (ev *Evaluator) evalBinary(e ir2.Binary, env Env) (ir2.Expr, error) {
	switch e.Op {
	case ir2.OpAnd:
		return ev.evalShortCircuit(e, env, true)
	case ir2.OpOr:
		return ev.evalShortCircuit(e, env, false)
	case ir2.OpImplies:
		// P => Q  ==  !P || Q
		notL := ir2.NewUnary(e.E1.Pos(), e.E1.Type(), ir2.OpLogicalNot, e.E1)
		desugared := ir2.NewBinary(e.Pos(), e.Type(), ir2.OpOr, notL, e.E2)
		return ev.Eval(desugared, env)
	case ir2.OpIff:
		// P <=> Q  ==  (P => Q) && (Q => P)
		fwd := ir2.NewBinary(e.Pos(), e.Type(), ir2.OpImplies, e.E1, e.E2)
		bwd := ir2.NewBinary(e.Pos(), e.Type(), ir2.OpImplies, e.E2, e.E1)
		desugared := ir2.NewBinary(e.Pos(), e.Type(), ir2.OpAnd, fwd, bwd)
		return ev.Eval(desugared, env)
	}

	l, err := ev.Eval(e.E1, env)
	if err != nil {
		return nil, err
	}
	r, err := ev.Eval(e.E2, env)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ir2.OpAdd, ir2.OpSub, ir2.OpMul, ir2.OpDiv, ir2.OpRem,
		ir2.OpBitAnd, ir2.OpBitOr, ir2.OpBitXor, ir2.OpShl, ir2.OpShr:
		if folded, ok := foldArith(e.Op, l, r, env); ok {
			return folded, nil
		}
	case ir2.OpLt, ir2.OpGt, ir2.OpLe, ir2.OpGe:
		if folded, ok := foldCompare(e.Op, l, r, e.Pos(), e.Type()); ok {
			return folded, nil
		}
	case ir2.OpEq, ir2.OpNeq:
		switch SyntacticEqual(l, r, env) {
		case Equal:
			return boolResult(e.Op == ir2.OpEq, e.Pos(), e.Type()), nil
		case NotEq:
			return boolResult(e.Op == ir2.OpNeq, e.Pos(), e.Type()), nil
		}
	}

	e.E1, e.E2 = l, r
	if ev.Canonicalize {
		return Canonicalize(e), nil
	}
	return e, nil
}

func (ev *Evaluator) evalShortCircuit(e ir2.Binary, env Env, isAnd bool) (ir2.Expr, error) {
	l, err := ev.Eval(e.E1, env)
	if err != nil {
		return nil, err
	}
	if lb, ok := asBoolLit(l); ok {
		if lb == isAnd {
			// And: L was true, continue to R. Or: L was false, continue to R.
			return ev.Eval(e.E2, env)
		}
		// And: L was false -> False. Or: L was true -> True.
		return boolResult(lb, e.Pos(), e.Type()), nil
	}
	r, err := ev.Eval(e.E2, env)
	if err != nil {
		return nil, err
	}
	e.E1, e.E2 = l, r
	return e, nil
}

func asBoolLit(e ir2.Expr) (bool, bool) {
	switch e.(type) {
	case ir2.True:
		return true, true
	case ir2.False:
		return false, true
	default:
		return false, false
	}
}

func boolResult(v bool, pos token.Position, t types.Type) ir2.Expr {
	if v {
		return ir2.NewTrue(pos, t)
	}
	return ir2.NewFalse(pos, t)
}

func foldArith(op ir2.BinaryOp, l, r ir2.Expr, env Env) (ir2.Expr, bool) {
	li, lok := asIntLit(l)
	ri, rok := asIntLit(r)

	switch op {
	case ir2.OpAdd:
		if isZeroLit(r) {
			return l, true
		}
		if isZeroLit(l) {
			return r, true
		}
	case ir2.OpSub:
		if isZeroLit(r) {
			return l, true
		}
		if SyntacticEqual(l, r, env) == Equal {
			return zeroOf(l), true
		}
	case ir2.OpMul:
		if isOneLit(r) {
			return l, true
		}
		if isOneLit(l) {
			return r, true
		}
		if isZeroLit(r) {
			return r, true
		}
		if isZeroLit(l) {
			return l, true
		}
	case ir2.OpDiv:
		if isOneLit(r) {
			return l, true
		}
	case ir2.OpRem:
		if isOneLit(r) {
			return zeroOf(l), true
		}
	}

	if !lok || !rok || li.width != ri.width {
		return nil, false
	}
	switch op {
	case ir2.OpAdd:
		return rebuild(li, li.val+ri.val, l), true
	case ir2.OpSub:
		return rebuild(li, li.val-ri.val, l), true
	case ir2.OpMul:
		return rebuild(li, li.val*ri.val, l), true
	case ir2.OpDiv:
		if ri.val == 0 {
			return nil, false // residualize, not folded
		}
		return rebuild(li, li.val/ri.val, l), true
	case ir2.OpRem:
		if ri.val == 0 {
			return nil, false
		}
		return rebuild(li, li.val%ri.val, l), true
	case ir2.OpBitAnd:
		return rebuild(li, li.val&ri.val, l), true
	case ir2.OpBitOr:
		return rebuild(li, li.val|ri.val, l), true
	case ir2.OpBitXor:
		return rebuild(li, li.val^ri.val, l), true
	case ir2.OpShl:
		return rebuild(li, li.val<<uint(ri.val), l), true
	case ir2.OpShr:
		return rebuild(li, li.val>>uint(ri.val), l), true
	}
	return nil, false
}

func isZeroLit(e ir2.Expr) bool { l, ok := asIntLit(e); return ok && l.val == 0 }
func isOneLit(e ir2.Expr) bool  { l, ok := asIntLit(e); return ok && l.val == 1 }

// zeroOf builds the width-tagged zero literal for e's operand type, used by
// the `x - x` and `x % 1` identity rewrites of §4.F when x is itself a
// residual rather than an already-folded literal.
func zeroOf(e ir2.Expr) ir2.Expr {
	if l, ok := asIntLit(e); ok {
		return rebuild(l, 0, e)
	}
	if p, ok := e.Type().(*types.Primitive); ok {
		switch p.Kind {
		case types.Int8:
			return ir2.NewInt8(e.Pos(), e.Type(), 0)
		case types.Int16:
			return ir2.NewInt16(e.Pos(), e.Type(), 0)
		case types.Int64:
			return ir2.NewInt64(e.Pos(), e.Type(), 0)
		}
	}
	return ir2.NewInt32(e.Pos(), e.Type(), 0)
}

func foldCompare(op ir2.BinaryOp, l, r ir2.Expr, pos token.Position, t types.Type) (ir2.Expr, bool) {
	li, lok := asIntLit(l)
	ri, rok := asIntLit(r)
	if !lok || !rok || li.width != ri.width {
		return nil, false
	}
	var v bool
	switch op {
	case ir2.OpLt:
		v = li.val < ri.val
	case ir2.OpGt:
		v = li.val > ri.val
	case ir2.OpLe:
		v = li.val <= ri.val
	case ir2.OpGe:
		v = li.val >= ri.val
	default:
		return nil, false
	}
	return boolResult(v, pos, t), true
}
