// Package sym interns qualified names into canonical symbols (component A,
// the Symbol & Name Registry) and decides cross-namespace visibility
// (component C, the Accessibility Oracle).
package sym

import "strings"

// Namespace is a dotted path of identifiers identifying a lexical scope.
// The zero value is the root namespace.
type Namespace struct {
	Path []string
}

// Root returns the root namespace.
func Root() Namespace { return Namespace{} }

// NS builds a namespace from its dotted path segments.
func NS(segments ...string) Namespace { return Namespace{Path: segments} }

// ParseNS splits a dotted string like "A.B.C" into a namespace. An empty
// string denotes the root namespace.
func ParseNS(s string) Namespace {
	if s == "" {
		return Root()
	}
	return Namespace{Path: strings.Split(s, ".")}
}

func (n Namespace) String() string { return strings.Join(n.Path, ".") }

// IsRoot reports whether n is the root namespace.
func (n Namespace) IsRoot() bool { return len(n.Path) == 0 }

// Child returns the namespace nested one level under n.
func (n Namespace) Child(ident string) Namespace {
	path := make([]string, len(n.Path)+1)
	copy(path, n.Path)
	path[len(n.Path)] = ident
	return Namespace{Path: path}
}

// Parent returns the enclosing namespace and true, or the zero value and
// false if n is already the root.
func (n Namespace) Parent() (Namespace, bool) {
	if len(n.Path) == 0 {
		return Namespace{}, false
	}
	return Namespace{Path: n.Path[:len(n.Path)-1]}, true
}

// Within reports whether n is declarer itself or a descendant of declarer —
// the relation the Accessibility Oracle (§4.C) uses for non-public symbols.
func (n Namespace) Within(declarer Namespace) bool {
	if len(declarer.Path) > len(n.Path) {
		return false
	}
	for i, seg := range declarer.Path {
		if n.Path[i] != seg {
			return false
		}
	}
	return true
}

// Equal reports whether two namespaces denote the same scope.
func (n Namespace) Equal(other Namespace) bool {
	if len(n.Path) != len(other.Path) {
		return false
	}
	for i, seg := range n.Path {
		if other.Path[i] != seg {
			return false
		}
	}
	return true
}

// Less gives namespaces a total order (lexicographic on path segments),
// used to sort candidate locations deterministically — e.g. for the
// AmbiguousTag diagnostic's candidate listing (§4.D).
func (n Namespace) Less(other Namespace) bool {
	for i := 0; i < len(n.Path) && i < len(other.Path); i++ {
		if n.Path[i] != other.Path[i] {
			return n.Path[i] < other.Path[i]
		}
	}
	return len(n.Path) < len(other.Path)
}

// Name is a (possibly qualified) reference to an identifier as it appears in
// the named AST: a dotted path of identifiers plus a terminal identifier.
type Name struct {
	Qualifier Namespace
	Ident     string
}

// IsQualified reports whether the name carries an explicit namespace prefix.
func (n Name) IsQualified() bool { return !n.Qualifier.IsRoot() }

func (n Name) String() string {
	if n.IsQualified() {
		return n.Qualifier.String() + "." + n.Ident
	}
	return n.Ident
}
