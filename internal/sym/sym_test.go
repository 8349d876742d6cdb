package sym_test

import (
	"testing"

	"avncore/internal/sym"
	"avncore/internal/token"
)

func TestMkDefnSym_InternsByNamespaceAndIdent(t *testing.T) {
	reg := sym.NewRegistry()
	a := reg.MkDefnSym(sym.NS("A"), "f", token.Position{}, true)
	b := reg.MkDefnSym(sym.NS("A"), "f", token.Position{}, true)
	if a != b {
		t.Errorf("expected the same *Symbol for repeated (ns, ident), got distinct pointers")
	}

	c := reg.MkDefnSym(sym.NS("B"), "f", token.Position{}, true)
	if a == c {
		t.Errorf("expected a distinct *Symbol for a different namespace")
	}
}

func TestFreshVarSym_NeverInterns(t *testing.T) {
	reg := sym.NewRegistry()
	a := reg.FreshVarSym("x")
	b := reg.FreshVarSym("x")
	if a == b {
		t.Errorf("FreshVarSym should mint a new symbol on every call")
	}
}

func TestAccessible_PublicAlwaysAccessible(t *testing.T) {
	info := sym.AccessInfo{Namespace: sym.NS("A", "B"), Public: true}
	if !sym.Accessible(info, sym.NS("Z")) {
		t.Errorf("a public definition should be accessible from any namespace")
	}
}

func TestAccessible_PrivateOnlyWithinDeclaringSubtree(t *testing.T) {
	info := sym.AccessInfo{Namespace: sym.NS("A", "B"), Public: false}
	if !sym.Accessible(info, sym.NS("A", "B", "C")) {
		t.Errorf("a private definition should be accessible from a descendant namespace")
	}
	if sym.Accessible(info, sym.NS("A")) {
		t.Errorf("a private definition should not be accessible from an ancestor namespace")
	}
	if sym.Accessible(info, sym.NS("Z")) {
		t.Errorf("a private definition should not be accessible from an unrelated namespace")
	}
}

func TestNamespace_ParseAndString(t *testing.T) {
	ns := sym.NS("A", "B", "C")
	if got := ns.String(); got != "A.B.C" {
		t.Errorf("got %q, want A.B.C", got)
	}
	if parsed := sym.ParseNS(ns.String()); !parsed.Equal(ns) {
		t.Errorf("ParseNS(String()) should round-trip, got %v", parsed)
	}
}

func TestNamespace_Within(t *testing.T) {
	if !sym.NS("A", "B").Within(sym.NS("A")) {
		t.Errorf("A.B should be within A")
	}
	if sym.NS("A").Within(sym.NS("A", "B")) {
		t.Errorf("A should not be within A.B")
	}
	if !sym.Root().Within(sym.Root()) {
		t.Errorf("the root namespace should be within itself")
	}
}
