package sym

import (
	"fmt"

	"github.com/google/uuid"

	"avncore/internal/token"
)

// Kind distinguishes the different things a Symbol can stand for.
type Kind int

const (
	KindDef  Kind = iota // a top-level definition (or hook)
	KindHole             // a ?hole placeholder
	KindVar              // a freshly-minted binder, e.g. an eta-expansion's formal
	KindEnum             // an enum declaration
	KindTag              // a tag case declared by an enum
)

func (k Kind) String() string {
	switch k {
	case KindDef:
		return "def"
	case KindHole:
		return "hole"
	case KindVar:
		return "var"
	case KindEnum:
		return "enum"
	case KindTag:
		return "tag"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Symbol is the canonical handle produced by resolving a name. Symbols are
// compared by identity (pointer equality) — two Symbol values denote the
// same thing iff they are the same pointer.
type Symbol struct {
	id    uint64
	kind  Kind
	ns    Namespace
	ident string
	pos   token.Position

	// Public marks a def/enum as accessible from every namespace (§4.C).
	// Irrelevant for KindVar/KindHole, which are never subject to the
	// Accessibility Oracle.
	Public bool
}

func (s *Symbol) ID() uint64             { return s.id }
func (s *Symbol) Kind() Kind             { return s.kind }
func (s *Symbol) Namespace() Namespace   { return s.ns }
func (s *Symbol) Ident() string          { return s.ident }
func (s *Symbol) Pos() token.Position    { return s.pos }
func (s *Symbol) Name() Name             { return Name{Qualifier: s.ns, Ident: s.ident} }

func (s *Symbol) String() string {
	return fmt.Sprintf("%s/%s#%d", s.kind, s.Name(), s.id)
}

// AccessInfo is the minimal view of a symbol the Accessibility Oracle needs.
type AccessInfo struct {
	Namespace Namespace
	Public    bool
}

// Accessible implements §4.C: a definition/enum is accessible from namespace
// from iff it is public, or from is the declaring namespace or a descendant
// of it.
func Accessible(def AccessInfo, from Namespace) bool {
	return def.Public || from.Within(def.Namespace)
}

type internKey struct {
	ns    string
	ident string
}

// Registry is the single owner of symbol identity and the fresh-symbol
// counter (spec §5: "the only piece of mutable global state" must be
// accessed through a single owner). It is never exposed as a package-level
// variable — callers thread a *Registry explicitly, mirroring
// wdamron/poly's TypeEnv.freshId, which owns NextVarId on the struct rather
// than behind an ambient global.
type Registry struct {
	counter  uint64
	unitID   uuid.UUID
	interned map[internKey]*Symbol
}

// NewRegistry creates a registry for one compilation unit, with a fresh
// random compilation-unit id returned by UnitID. The id is held by the
// registry only; symbols, diagnostics, timings and cache entries do not
// carry it.
func NewRegistry() *Registry {
	return &Registry{
		unitID:   uuid.New(),
		interned: make(map[internKey]*Symbol),
	}
}

// UnitID returns the compilation-unit id minted for this registry.
func (r *Registry) UnitID() uuid.UUID { return r.unitID }

func (r *Registry) next() uint64 {
	r.counter++
	return r.counter
}

// MkDefnSym interns the symbol for a definition declared as `ident` within
// ns. Deterministic: the same (ns, ident) pair always yields the same
// Symbol within this registry's lifetime.
func (r *Registry) MkDefnSym(ns Namespace, ident string, pos token.Position, public bool) *Symbol {
	key := internKey{ns: ns.String(), ident: ident}
	if s, ok := r.interned[key]; ok {
		return s
	}
	s := &Symbol{id: r.next(), kind: KindDef, ns: ns, ident: ident, pos: pos, Public: public}
	r.interned[key] = s
	return s
}

// MkHoleSym mints the symbol for a `?hole` occurrence in the enclosing
// namespace ns. Each occurrence of a hole is a distinct placeholder, so
// unlike MkDefnSym this is not interned by (ns, ident).
func (r *Registry) MkHoleSym(ns Namespace, ident string, pos token.Position) *Symbol {
	return &Symbol{id: r.next(), kind: KindHole, ns: ns, ident: ident, pos: pos}
}

// MkEnumSym interns the symbol declared by an enum declaration.
func (r *Registry) MkEnumSym(ns Namespace, ident string, pos token.Position, public bool) *Symbol {
	key := internKey{ns: ns.String(), ident: "enum:" + ident}
	if s, ok := r.interned[key]; ok {
		return s
	}
	s := &Symbol{id: r.next(), kind: KindEnum, ns: ns, ident: ident, pos: pos, Public: public}
	r.interned[key] = s
	return s
}

// MkTagSym interns the symbol for a single tag case declared by an enum.
func (r *Registry) MkTagSym(enumNS Namespace, enumIdent, tagIdent string, pos token.Position) *Symbol {
	key := internKey{ns: enumNS.String(), ident: "tag:" + enumIdent + "." + tagIdent}
	if s, ok := r.interned[key]; ok {
		return s
	}
	s := &Symbol{id: r.next(), kind: KindTag, ns: enumNS, ident: tagIdent, pos: pos}
	r.interned[key] = s
	return s
}

// FreshVarSym is monotonic: every call returns a symbol distinct from all
// previously returned ones within this registry's lifetime, regardless of
// prefix collisions.
func (r *Registry) FreshVarSym(prefix string) *Symbol {
	id := r.next()
	return &Symbol{id: id, kind: KindVar, ident: fmt.Sprintf("%s$%d", prefix, id)}
}
