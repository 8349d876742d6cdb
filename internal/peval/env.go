package peval

import (
	"github.com/benbjohnson/immutable"

	"avncore/internal/ir2"
)

var emptyBindings = immutable.NewSortedMap(nil)

// Env is a persistent mapping from variable name to simplified expression
// (§3). Extension is purely functional — Bind never mutates the receiver,
// matching wdamron/poly's TypeMap usage of the same benbjohnson/immutable
// SortedMap.
type Env struct {
	m *immutable.SortedMap
}

// NewEnv returns the empty environment.
func NewEnv() Env { return Env{m: emptyBindings} }

// Bind returns a new environment extending e with name bound to bound,
// leaving e itself unmodified.
func (e Env) Bind(name string, bound ir2.Expr) Env {
	m := e.m
	if m == nil {
		m = emptyBindings
	}
	return Env{m: m.Set(name, bound)}
}

// Lookup returns the expression bound to name, or (nil, false) if name is
// unbound.
func (e Env) Lookup(name string) (ir2.Expr, bool) {
	if e.m == nil {
		return nil, false
	}
	v, ok := e.m.Get(name)
	if !ok {
		return nil, false
	}
	return v.(ir2.Expr), true
}
