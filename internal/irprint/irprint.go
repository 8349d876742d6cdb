// Package irprint implements the AST/IR pretty-printer (component N):
// stable, deterministic, indentation-based rendering of simplified
// expression trees and type terms, grounded on internal/ast/print.go's
// structural printer style.
package irprint

import (
	"fmt"
	"io"
	"strings"

	"avncore/internal/ir2"
	"avncore/internal/sym"
	"avncore/internal/types"
)

// Print renders e to w in a deterministic textual form, used by
// diagnostics to show a residual expression and by the CLI to show the
// final partially-evaluated program.
func Print(w io.Writer, e ir2.Expr) {
	printExpr(w, e, 0)
}

// Sprint is a convenience wrapper returning Print's output as a string.
func Sprint(e ir2.Expr) string {
	var sb strings.Builder
	Print(&sb, e)
	return sb.String()
}

func printExpr(w io.Writer, e ir2.Expr, indent int) {
	ind := strings.Repeat("  ", indent)
	switch e := e.(type) {
	case ir2.Unit:
		fmt.Fprintf(w, "%sunit\n", ind)
	case ir2.True:
		fmt.Fprintf(w, "%strue\n", ind)
	case ir2.False:
		fmt.Fprintf(w, "%sfalse\n", ind)
	case ir2.Int8:
		fmt.Fprintf(w, "%s%d_i8\n", ind, e.Val)
	case ir2.Int16:
		fmt.Fprintf(w, "%s%d_i16\n", ind, e.Val)
	case ir2.Int32:
		fmt.Fprintf(w, "%s%d\n", ind, e.Val)
	case ir2.Int64:
		fmt.Fprintf(w, "%s%d_i64\n", ind, e.Val)
	case ir2.Str:
		fmt.Fprintf(w, "%s%q\n", ind, e.Val)
	case ir2.Var:
		fmt.Fprintf(w, "%s%s\n", ind, e.Name)
	case ir2.Ref:
		fmt.Fprintf(w, "%s%s\n", ind, e.Sym.Name().String())
	case ir2.Lambda:
		fmt.Fprintf(w, "%slambda(%s)\n", ind, joinFormals(e.Formals))
		printExpr(w, e.Body, indent+1)
	case ir2.Closure:
		fmt.Fprintf(w, "%sclosure(%s) captures=%d\n", ind, joinFormals(e.Formals), len(e.CapturedEnv))
		printExpr(w, e.Body, indent+1)
	case ir2.Apply3:
		fmt.Fprintf(w, "%sapply\n", ind)
		printExpr(w, e.Callee, indent+1)
		for _, a := range e.Actuals {
			printExpr(w, a, indent+1)
		}
	case ir2.Unary:
		fmt.Fprintf(w, "%sunary %s\n", ind, unaryOpName(e.Op))
		printExpr(w, e.E, indent+1)
	case ir2.Binary:
		fmt.Fprintf(w, "%sbinary %s\n", ind, binaryOpName(e.Op))
		printExpr(w, e.E1, indent+1)
		printExpr(w, e.E2, indent+1)
	case ir2.Let:
		fmt.Fprintf(w, "%slet %s =\n", ind, e.Name)
		printExpr(w, e.Bound, indent+1)
		fmt.Fprintf(w, "%sin\n", ind)
		printExpr(w, e.Body, indent+1)
	case ir2.IfThenElse:
		fmt.Fprintf(w, "%sif\n", ind)
		printExpr(w, e.Cond, indent+1)
		fmt.Fprintf(w, "%sthen\n", ind)
		printExpr(w, e.Then, indent+1)
		fmt.Fprintf(w, "%selse\n", ind)
		printExpr(w, e.Else, indent+1)
	case ir2.Tag:
		fmt.Fprintf(w, "%stag %s\n", ind, e.TagName)
		printExpr(w, e.Payload, indent+1)
	case ir2.CheckTag:
		fmt.Fprintf(w, "%scheck-tag %s\n", ind, e.TagName)
		printExpr(w, e.E, indent+1)
	case ir2.GetTagValue:
		fmt.Fprintf(w, "%sget-tag-value\n", ind)
		printExpr(w, e.E, indent+1)
	case ir2.Tuple:
		fmt.Fprintf(w, "%stuple\n", ind)
		for _, el := range e.Elements {
			printExpr(w, el, indent+1)
		}
	case ir2.GetTupleIndex:
		fmt.Fprintf(w, "%sget-tuple-index %d\n", ind, e.Offset)
		printExpr(w, e.E, indent+1)
	case ir2.Set:
		fmt.Fprintf(w, "%sset\n", ind)
		for _, el := range e.Elements {
			printExpr(w, el, indent+1)
		}
	case ir2.Error:
		fmt.Fprintf(w, "%serror\n", ind)
	case ir2.MatchError:
		fmt.Fprintf(w, "%smatch-error\n", ind)
	default:
		fmt.Fprintf(w, "%s<%T>\n", ind, e)
	}
}

func joinFormals(formals []*sym.Symbol) string {
	parts := make([]string, len(formals))
	for i, f := range formals {
		parts[i] = f.Ident()
	}
	return strings.Join(parts, ", ")
}

func unaryOpName(op ir2.UnaryOp) string {
	switch op {
	case ir2.OpLogicalNot:
		return "!"
	case ir2.OpPlus:
		return "+"
	case ir2.OpMinus:
		return "-"
	case ir2.OpBitwiseNegate:
		return "~"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

func binaryOpName(op ir2.BinaryOp) string {
	names := map[ir2.BinaryOp]string{
		ir2.OpAdd: "+", ir2.OpSub: "-", ir2.OpMul: "*", ir2.OpDiv: "/", ir2.OpRem: "%",
		ir2.OpLt: "<", ir2.OpGt: ">", ir2.OpLe: "<=", ir2.OpGe: ">=",
		ir2.OpEq: "==", ir2.OpNeq: "!=", ir2.OpAnd: "&&", ir2.OpOr: "||",
		ir2.OpImplies: "=>", ir2.OpIff: "<=>", ir2.OpBitAnd: "&", ir2.OpBitOr: "|",
		ir2.OpBitXor: "^", ir2.OpShl: "<<", ir2.OpShr: ">>",
	}
	if n, ok := names[op]; ok {
		return n
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// PrintType renders t in the same deterministic style used for surface
// types (internal/ast's DumpType), reusing types.Type.String directly
// since type terms are already rendered canonically there.
func PrintType(w io.Writer, t types.Type) {
	fmt.Fprint(w, t.String())
}
