// Package peval implements the Partial Evaluator core (component F) and the
// Syntactic Equality & Canonicalizer (component G).
package peval

import (
	"avncore/internal/diag"
	"avncore/internal/ir2"
	"avncore/internal/sym"
)

// Evaluator is a CPS-style tree rewriter implemented in direct style (§4.F:
// pipeline nesting depth is bounded by program nesting, so a trampoline is
// unneeded complexity for this corpus).
type Evaluator struct {
	// Defs holds every top-level definition's body, keyed by its symbol,
	// for Ref lookups.
	Defs map[*sym.Symbol]ir2.Expr
	// Canonicalize enables the best-effort canonical form for residual
	// associative/commutative chains (component G), toggled by
	// config.Options.Canonicalize.
	Canonicalize bool
}

// NewEvaluator returns an evaluator resolving Ref occurrences against defs.
func NewEvaluator(defs map[*sym.Symbol]ir2.Expr) *Evaluator {
	return &Evaluator{Defs: defs, Canonicalize: true}
}

// Eval reduces e under env as far as it can, returning either a value or a
// residual expression (§3). A returned error is always fatal: it denotes
// one of the invariant violations in §4.F's "Failure semantics".
func (ev *Evaluator) Eval(e ir2.Expr, env Env) (ir2.Expr, error) {
	switch e := e.(type) {
	case ir2.Unit, ir2.True, ir2.False, ir2.Int8, ir2.Int16, ir2.Int32, ir2.Int64, ir2.Str, ir2.Closure:
		return e, nil

	case ir2.Var:
		bound, ok := env.Lookup(e.Name)
		if !ok {
			return nil, diag.NewInternal(diag.UnresolvedVariable, e.Pos(), "unresolved variable "+e.Name, "")
		}
		return ev.Eval(bound, env)

	case ir2.Ref:
		body, ok := ev.Defs[e.Sym]
		if !ok {
			return nil, diag.NewInternal(diag.UnresolvedReference, e.Pos(), "unresolved reference "+e.Sym.String(), "")
		}
		return body, nil

	case ir2.Lambda:
		return e, nil

	case ir2.Unary:
		return ev.evalUnary(e, env)

	case ir2.Binary:
		return ev.evalBinary(e, env)

	case ir2.Let:
		return ev.evalLet(e, env)

	case ir2.IfThenElse:
		return ev.evalIf(e, env)

	case ir2.Apply3:
		return ev.evalApply(e, env)

	case ir2.Tag:
		payload, err := ev.Eval(e.Payload, env)
		if err != nil {
			return nil, err
		}
		e.Payload = payload
		return e, nil

	case ir2.CheckTag:
		x, err := ev.Eval(e.E, env)
		if err != nil {
			return nil, err
		}
		if tag, ok := x.(ir2.Tag); ok {
			if tag.TagName == e.TagName {
				return ir2.NewTrue(e.Pos(), e.Type()), nil
			}
			return ir2.NewFalse(e.Pos(), e.Type()), nil
		}
		e.E = x
		return e, nil

	case ir2.GetTagValue:
		x, err := ev.Eval(e.E, env)
		if err != nil {
			return nil, err
		}
		if tag, ok := x.(ir2.Tag); ok {
			return tag.Payload, nil
		}
		e.E = x
		return e, nil

	case ir2.Tuple:
		elems := make([]ir2.Expr, len(e.Elements))
		for i, el := range e.Elements {
			v, err := ev.Eval(el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		e.Elements = elems
		return e, nil

	case ir2.GetTupleIndex:
		x, err := ev.Eval(e.E, env)
		if err != nil {
			return nil, err
		}
		if tup, ok := x.(ir2.Tuple); ok && e.Offset < len(tup.Elements) {
			return tup.Elements[e.Offset], nil
		}
		e.E = x
		return e, nil

	case ir2.Set:
		elems := make([]ir2.Expr, len(e.Elements))
		for i, el := range e.Elements {
			v, err := ev.Eval(el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		e.Elements = elems
		return e, nil

	case ir2.Error:
		return e, nil
	case ir2.MatchError:
		return e, nil

	default:
		return nil, diag.NewInternal(diag.IllegalType, e.Pos(), "unrecognized simplified-expression node", "")
	}
}

func (ev *Evaluator) evalLet(e ir2.Let, env Env) (ir2.Expr, error) {
	bound, err := ev.Eval(e.Bound, env)
	if err != nil {
		return nil, err
	}
	if ir2.IsValue(bound) {
		return ev.Eval(e.Body, env.Bind(e.Name, bound))
	}
	// Non-value residual: the Let node is kept around the residual (see
	// DESIGN.md). The residual is also bound for evaluating Body, so each
	// occurrence of Name in Body is replaced by it as well.
	body, err := ev.Eval(e.Body, env.Bind(e.Name, bound))
	if err != nil {
		return nil, err
	}
	e.Bound = bound
	e.Body = body
	return e, nil
}

func (ev *Evaluator) evalIf(e ir2.IfThenElse, env Env) (ir2.Expr, error) {
	cond, err := ev.Eval(e.Cond, env)
	if err != nil {
		return nil, err
	}
	switch cond.(type) {
	case ir2.True:
		return ev.Eval(e.Then, env)
	case ir2.False:
		return ev.Eval(e.Else, env)
	}
	then, err := ev.Eval(e.Then, env)
	if err != nil {
		return nil, err
	}
	els, err := ev.Eval(e.Else, env)
	if err != nil {
		return nil, err
	}
	e.Cond, e.Then, e.Else = cond, then, els
	return e, nil
}

func (ev *Evaluator) evalApply(e ir2.Apply3, env Env) (ir2.Expr, error) {
	callee, err := ev.Eval(e.Callee, env)
	if err != nil {
		return nil, err
	}
	actuals := make([]ir2.Expr, len(e.Actuals))
	for i, a := range e.Actuals {
		v, err := ev.Eval(a, env)
		if err != nil {
			return nil, err
		}
		actuals[i] = v
	}

	lam, ok := callee.(ir2.Lambda)
	if !ok || len(lam.Formals) != len(actuals) {
		e.Callee = callee
		e.Actuals = actuals
		return e, nil
	}

	inner := env
	for i, formal := range lam.Formals {
		inner = inner.Bind(formal.Ident(), actuals[i])
	}
	return ev.Eval(lam.Body, inner)
}
