package peval

import (
	"fmt"
	"sort"

	"avncore/internal/ir2"
)

func isAssocCommutative(op ir2.BinaryOp) bool {
	switch op {
	case ir2.OpAdd, ir2.OpMul, ir2.OpAnd, ir2.OpOr, ir2.OpEq:
		return true
	default:
		return false
	}
}

// Canonicalize reorders an associative/commutative binary chain into a
// deterministic form: flatten same-operator chains, sort operands by a
// stable structural key, rebuild left-associated (component G). Pure and
// idempotent — re-canonicalizing an already-canonical chain is a no-op.
func Canonicalize(e ir2.Binary) ir2.Expr {
	if !isAssocCommutative(e.Op) {
		return e
	}
	operands := flattenChain(e.Op, e)
	if len(operands) < 2 {
		return e
	}
	sort.SliceStable(operands, func(i, j int) bool {
		return structuralKey(operands[i]) < structuralKey(operands[j])
	})

	result := operands[0]
	for i, next := range operands[1:] {
		pos, typ := e.Pos(), e.Type()
		if i < len(operands)-2 {
			// Intermediate nodes carry no source position of their own.
			pos = next.Pos()
		}
		result = ir2.NewBinary(pos, typ, e.Op, result, next)
	}
	return result
}

func flattenChain(op ir2.BinaryOp, e ir2.Expr) []ir2.Expr {
	b, ok := e.(ir2.Binary)
	if !ok || b.Op != op {
		return []ir2.Expr{e}
	}
	var out []ir2.Expr
	out = append(out, flattenChain(op, b.E1)...)
	out = append(out, flattenChain(op, b.E2)...)
	return out
}

// structuralKey renders e as a deterministic sort key. It need not be a
// faithful pretty-print (that is irprint's job) — only total and stable
// across structurally equal expressions.
func structuralKey(e ir2.Expr) string {
	switch e := e.(type) {
	case ir2.Unit:
		return "0:Unit"
	case ir2.True:
		return "0:True"
	case ir2.False:
		return "0:False"
	case ir2.Int8:
		return fmt.Sprintf("1:Int8:%d", e.Val)
	case ir2.Int16:
		return fmt.Sprintf("1:Int16:%d", e.Val)
	case ir2.Int32:
		return fmt.Sprintf("1:Int32:%d", e.Val)
	case ir2.Int64:
		return fmt.Sprintf("1:Int64:%d", e.Val)
	case ir2.Str:
		return fmt.Sprintf("1:Str:%s", e.Val)
	case ir2.Var:
		return fmt.Sprintf("2:Var:%s:%d", e.Name, e.Offset)
	case ir2.Ref:
		return fmt.Sprintf("3:Ref:%s", e.Sym.String())
	case ir2.Unary:
		return fmt.Sprintf("4:Unary:%d:(%s)", e.Op, structuralKey(e.E))
	case ir2.Binary:
		return fmt.Sprintf("5:Binary:%d:(%s,%s)", e.Op, structuralKey(e.E1), structuralKey(e.E2))
	case ir2.Tuple:
		s := "6:Tuple:("
		for i, el := range e.Elements {
			if i > 0 {
				s += ","
			}
			s += structuralKey(el)
		}
		return s + ")"
	case ir2.Tag:
		return fmt.Sprintf("7:Tag:%s:(%s)", e.TagName, structuralKey(e.Payload))
	default:
		return fmt.Sprintf("9:%T", e)
	}
}
