package pipeline

import (
	"strconv"

	"avncore/internal/ast"
	"avncore/internal/diag"
	"avncore/internal/ir2"
	"avncore/internal/resolver"
	"avncore/internal/sym"
	"avncore/internal/types"
)

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// Simplify is the lightweight stand-in for the external type-checker and
// simplifier that normally sits between name resolution (E) and the
// partial evaluator (F) — both are out of scope for this repository (§1).
// It translates every resolved top-level definition's body into ir2.Expr
// without running type inference: literals carry their literal's type,
// unary and binary nodes are typed Unit, wildcards and holes become a Unit
// literal, and the other nodes carry no type. That is enough to exercise
// F/G's folding rules without reimplementing a type checker.
func Simplify(rprog *resolver.RProgram) (map[*sym.Symbol]ir2.Expr, error) {
	defs := make(map[*sym.Symbol]ir2.Expr)
	for _, contents := range rprog.Namespaces {
		for _, d := range contents.Defs {
			if d.Body == nil {
				continue // hook: no body to simplify
			}
			body, err := translate(d.Body)
			if err != nil {
				return nil, err
			}
			defs[d.Sym] = body
		}
	}
	return defs, nil
}

func translate(e resolver.RExpr) (ir2.Expr, error) {
	switch e := e.(type) {
	case *resolver.RLiteral:
		return translateLiteral(e)

	case *resolver.RVar:
		return ir2.Var{Name: e.Sym.Ident()}, nil

	case *resolver.RDef:
		return ir2.Ref{Sym: e.Sym}, nil

	case *resolver.RLambda:
		body, err := translate(e.Body)
		if err != nil {
			return nil, err
		}
		formals := make([]*sym.Symbol, len(e.Params))
		copy(formals, e.Params)
		return ir2.Lambda{Formals: formals, Body: body}, nil

	case *resolver.RApply:
		callee, err := translate(e.Callee)
		if err != nil {
			return nil, err
		}
		actuals := make([]ir2.Expr, len(e.Args))
		for i, a := range e.Args {
			v, err := translate(a)
			if err != nil {
				return nil, err
			}
			actuals[i] = v
		}
		return ir2.Apply3{Callee: callee, Actuals: actuals}, nil

	case *resolver.RUnary:
		x, err := translate(e.X)
		if err != nil {
			return nil, err
		}
		return ir2.NewUnary(e.P, types.TUnit, ir2.UnaryOp(e.Op), x), nil

	case *resolver.RBinary:
		l, err := translate(e.L)
		if err != nil {
			return nil, err
		}
		r, err := translate(e.R)
		if err != nil {
			return nil, err
		}
		return ir2.NewBinary(e.P, types.TUnit, ir2.BinaryOp(e.Op), l, r), nil

	case *resolver.RLet:
		bound, err := translate(e.Bound)
		if err != nil {
			return nil, err
		}
		body, err := translate(e.Body)
		if err != nil {
			return nil, err
		}
		return ir2.Let{Name: e.Sym.Ident(), Bound: bound, Body: body}, nil

	case *resolver.RIf:
		cond, err := translate(e.Cond)
		if err != nil {
			return nil, err
		}
		then, err := translate(e.Then)
		if err != nil {
			return nil, err
		}
		els, err := translate(e.Else)
		if err != nil {
			return nil, err
		}
		return ir2.IfThenElse{Cond: cond, Then: then, Else: els}, nil

	case *resolver.RTuple:
		elems := make([]ir2.Expr, len(e.Elems))
		for i, el := range e.Elems {
			v, err := translate(el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return ir2.Tuple{Elements: elems}, nil

	case *resolver.RGetTupleIndex:
		x, err := translate(e.X)
		if err != nil {
			return nil, err
		}
		return ir2.GetTupleIndex{E: x, Offset: e.Index}, nil

	case *resolver.RSet:
		elems := make([]ir2.Expr, len(e.Elems))
		for i, el := range e.Elems {
			v, err := translate(el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return ir2.Set{Elements: elems}, nil

	case *resolver.RTag:
		var payload ir2.Expr = ir2.NewUnit(e.P, types.TUnit)
		if e.Payload != nil {
			p, err := translate(e.Payload)
			if err != nil {
				return nil, err
			}
			payload = p
		}
		return ir2.Tag{EnumSym: e.Enum, TagName: e.Tag, Payload: payload}, nil

	case *resolver.RCheckTag:
		x, err := translate(e.X)
		if err != nil {
			return nil, err
		}
		return ir2.CheckTag{TagName: e.Tag, E: x}, nil

	case *resolver.RGetTagValue:
		x, err := translate(e.X)
		if err != nil {
			return nil, err
		}
		return ir2.GetTagValue{E: x}, nil

	case *resolver.RError:
		return ir2.Error{}, nil

	case *resolver.RMatchError:
		return ir2.MatchError{}, nil

	case *resolver.RWild, *resolver.RHole:
		return ir2.NewUnit(e.Pos(), types.TUnit), nil

	default:
		return nil, diag.NewInternal(diag.IllegalType, e.Pos(), "simplifier has no translation for this resolved node", "")
	}
}

func translateLiteral(e *resolver.RLiteral) (ir2.Expr, error) {
	switch e.Kind {
	case ast.LitUnit:
		return ir2.NewUnit(e.P, types.TUnit), nil
	case ast.LitTrue:
		return ir2.NewTrue(e.P, types.TBool), nil
	case ast.LitFalse:
		return ir2.NewFalse(e.P, types.TBool), nil
	case ast.LitInt8:
		return ir2.NewInt8(e.P, types.TInt8, int8(e.Int)), nil
	case ast.LitInt16:
		return ir2.NewInt16(e.P, types.TInt16, int16(e.Int)), nil
	case ast.LitInt32:
		return ir2.NewInt32(e.P, types.TInt32, int32(e.Int)), nil
	case ast.LitInt64:
		return ir2.NewInt64(e.P, types.TInt64, e.Int), nil
	case ast.LitStr, ast.LitBigInt, ast.LitChar:
		// BigInt/Char are never folded by the partial evaluator (§4.F); they
		// pass through as opaque strings rather than gaining dedicated ir2
		// node kinds this phase does not need.
		return ir2.NewStr(e.P, types.TStr, e.Str), nil
	case ast.LitFloat32, ast.LitFloat64:
		return ir2.NewStr(e.P, types.TStr, formatFloat(e.Float)), nil
	default:
		return nil, diag.NewInternal(diag.IllegalType, e.P, "unrecognized literal kind", "")
	}
}
