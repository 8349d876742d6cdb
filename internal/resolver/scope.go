package resolver

import "avncore/internal/sym"

// Scope is a lexically-nested binder chain from a surface variable name to
// the symbol that occurrence is bound to, grounded on the teacher's
// checker.Scope parent-chained map.
type Scope struct {
	parent *Scope
	vars   map[string]*sym.Symbol
}

// NewScope returns a child scope of parent (nil for a top-level scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, vars: make(map[string]*sym.Symbol)}
}

// Bind introduces name into this scope, shadowing any outer binding.
func (s *Scope) Bind(name string, symbol *sym.Symbol) { s.vars[name] = symbol }

// Lookup searches this scope and its ancestors, innermost first.
func (s *Scope) Lookup(name string) *sym.Symbol {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v
		}
	}
	return nil
}
