package ast

import (
	"github.com/benbjohnson/immutable"

	"avncore/internal/sym"
)

var emptyNamespaces = immutable.NewSortedMap(nil)

// Program is a multi-map keyed by namespace, holding the declarations
// contributed to that namespace by the parser (§3). It is backed by a
// persistent map so that extending a program (e.g. merging a cached
// namespace fragment with freshly-parsed ones, §4.K) never mutates an
// ancestor a previous pass may still be holding a reference to — the same
// discipline wdamron/poly's TypeMap applies over the same library.
type Program struct {
	m *immutable.SortedMap
}

// NewProgram returns the empty program.
func NewProgram() Program { return Program{m: emptyNamespaces} }

// Namespace returns the contents declared directly in ns, or the zero value
// if ns has no declarations.
func (p Program) Namespace(ns sym.Namespace) *NamespaceContents {
	v, ok := p.m.Get(ns.String())
	if !ok {
		return &NamespaceContents{}
	}
	return v.(*NamespaceContents)
}

// Namespaces returns every namespace with at least one declaration, sorted.
func (p Program) Namespaces() []sym.Namespace {
	var out []sym.Namespace
	if p.m == nil {
		return out
	}
	itr := p.m.Iterator()
	for !itr.Done() {
		k, _ := itr.Next()
		out = append(out, sym.ParseNS(k.(string)))
	}
	return out
}

// Range iterates over every namespace with at least one declaration, in
// sorted order. If f returns false, iteration stops.
func (p Program) Range(f func(sym.Namespace, *NamespaceContents) bool) {
	if p.m == nil {
		return
	}
	itr := p.m.Iterator()
	for !itr.Done() {
		k, v := itr.Next()
		if !f(sym.ParseNS(k.(string)), v.(*NamespaceContents)) {
			return
		}
	}
}

// With returns a new Program with contents merged into ns, leaving p
// unmodified.
func (p Program) With(ns sym.Namespace, contents *NamespaceContents) Program {
	m := p.m
	if m == nil {
		m = emptyNamespaces
	}
	return Program{m: m.Set(ns.String(), contents)}
}

// Builder accumulates declarations into namespaces before producing an
// immutable Program, mirroring TypeMapBuilder's build-then-finalize shape.
type Builder struct {
	contents map[string]*NamespaceContents
	order    []string
}

// NewBuilder returns an empty program builder.
func NewBuilder() *Builder {
	return &Builder{contents: make(map[string]*NamespaceContents)}
}

func (b *Builder) slot(ns sym.Namespace) *NamespaceContents {
	key := ns.String()
	c, ok := b.contents[key]
	if !ok {
		c = &NamespaceContents{}
		b.contents[key] = c
		b.order = append(b.order, key)
	}
	return c
}

func (b *Builder) AddDef(ns sym.Namespace, d *DefDecl) { b.slot(ns).Defs = append(b.slot(ns).Defs, d) }
func (b *Builder) AddEnum(ns sym.Namespace, d *EnumDecl) {
	b.slot(ns).Enums = append(b.slot(ns).Enums, d)
}
func (b *Builder) AddLattice(ns sym.Namespace, d *LatticeDecl) {
	b.slot(ns).Lattices = append(b.slot(ns).Lattices, d)
}
func (b *Builder) AddIndex(ns sym.Namespace, d *IndexDecl) {
	b.slot(ns).Indices = append(b.slot(ns).Indices, d)
}
func (b *Builder) AddTable(ns sym.Namespace, d *TableDecl) {
	b.slot(ns).Tables = append(b.slot(ns).Tables, d)
}
func (b *Builder) AddConstraint(ns sym.Namespace, d *ConstraintDecl) {
	b.slot(ns).Constraints = append(b.slot(ns).Constraints, d)
}
func (b *Builder) AddProperty(ns sym.Namespace, d *PropertyDecl) {
	b.slot(ns).Properties = append(b.slot(ns).Properties, d)
}
func (b *Builder) AddNamed(ns sym.Namespace, d *NamedExprDecl) {
	b.slot(ns).Named = append(b.slot(ns).Named, d)
}
func (b *Builder) AddHook(ns sym.Namespace, d *HookDecl) {
	b.slot(ns).Hooks = append(b.slot(ns).Hooks, d)
}

// Build finalizes the builder into an immutable Program.
func (b *Builder) Build() Program {
	p := NewProgram()
	for _, key := range b.order {
		p = p.With(sym.ParseNS(key), b.contents[key])
	}
	return p
}
