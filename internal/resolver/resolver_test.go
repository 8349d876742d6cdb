package resolver_test

import (
	"testing"

	"avncore/internal/ast"
	"avncore/internal/diag"
	"avncore/internal/resolver"
	"avncore/internal/sym"
	"avncore/internal/token"
)

func buildProgram(t *testing.T, fill func(b *ast.Builder)) ast.Program {
	t.Helper()
	b := ast.NewBuilder()
	fill(b)
	return b.Build()
}

func TestResolveProgram_NamespaceTraversal(t *testing.T) {
	prog := buildProgram(t, func(b *ast.Builder) {
		b.AddDef(sym.Root(), &ast.DefDecl{Name: "top", Public: true, Body: &ast.LiteralExpr{Kind: ast.LitUnit}})
		b.AddDef(sym.NS("A", "B"), &ast.DefDecl{Name: "nested", Public: true, Body: &ast.LiteralExpr{Kind: ast.LitUnit}})
	})

	r := resolver.NewResolver(sym.NewRegistry(), prog)
	out := r.ResolveProgram()

	if len(out.Namespaces) != 2 {
		t.Fatalf("got %d namespaces, want 2", len(out.Namespaces))
	}
	if _, ok := out.Namespaces["A.B"]; !ok {
		t.Errorf("missing resolved namespace A.B")
	}
}

func TestResolveDefRef_UnqualifiedFallsBackToRoot(t *testing.T) {
	prog := buildProgram(t, func(b *ast.Builder) {
		b.AddDef(sym.Root(), &ast.DefDecl{Name: "helper", Public: true, Body: &ast.LiteralExpr{Kind: ast.LitUnit}})
		b.AddDef(sym.NS("A"), &ast.DefDecl{
			Name: "main", Public: true,
			Body: &ast.DefExpr{Ref: sym.Name{Ident: "helper"}},
		})
	})

	r := resolver.NewResolver(sym.NewRegistry(), prog)
	out := r.ResolveProgram()
	if r.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v / %v", r.Bag.Errors(), r.Bag.Internal())
	}

	mainDef := out.Namespaces["A"].Defs[0]
	ref, ok := mainDef.Body.(*resolver.RDef)
	if !ok {
		t.Fatalf("got %T, want *resolver.RDef", mainDef.Body)
	}
	if ref.Sym.Namespace().IsRoot() == false {
		t.Errorf("helper should resolve in the root namespace, got %s", ref.Sym.Namespace())
	}
}

func TestResolveDefRef_Undefined(t *testing.T) {
	prog := buildProgram(t, func(b *ast.Builder) {
		b.AddDef(sym.Root(), &ast.DefDecl{
			Name: "main", Public: true,
			Body: &ast.DefExpr{Ref: sym.Name{Ident: "nope"}},
		})
	})

	r := resolver.NewResolver(sym.NewRegistry(), prog)
	r.ResolveProgram()

	errs := r.Bag.Errors()
	if len(errs) != 1 || errs[0].Tag != diag.UndefinedDef {
		t.Fatalf("got %v, want exactly one UndefinedDef", errs)
	}
}

func TestResolveDefRef_InaccessibleFromOutsideDeclaringNamespace(t *testing.T) {
	prog := buildProgram(t, func(b *ast.Builder) {
		b.AddDef(sym.NS("A"), &ast.DefDecl{Name: "secret", Public: false, Body: &ast.LiteralExpr{Kind: ast.LitUnit}})
		b.AddDef(sym.NS("B"), &ast.DefDecl{
			Name: "main", Public: true,
			Body: &ast.DefExpr{Ref: sym.Name{Qualifier: sym.NS("A"), Ident: "secret"}},
		})
	})

	r := resolver.NewResolver(sym.NewRegistry(), prog)
	r.ResolveProgram()

	errs := r.Bag.Errors()
	if len(errs) != 1 || errs[0].Tag != diag.InaccessibleDef {
		t.Fatalf("got %v, want exactly one InaccessibleDef", errs)
	}
}

func TestDisambiguator_AmbiguousAcrossNamespaces(t *testing.T) {
	prog := buildProgram(t, func(b *ast.Builder) {
		b.AddEnum(sym.NS("A"), &ast.EnumDecl{Name: "Color", Cases: []ast.EnumCase{{Name: "Red"}}})
		b.AddEnum(sym.NS("B"), &ast.EnumDecl{Name: "Paint", Cases: []ast.EnumCase{{Name: "Red"}}})
	})

	d := resolver.NewDisambiguator(prog)
	_, _, err := d.Find(nil, "Red", sym.NS("C"), token.Position{})
	if err == nil {
		t.Fatalf("expected an ambiguous-tag error")
	}
	if de, ok := err.(*diag.Error); !ok || de.Tag != diag.AmbiguousTag {
		t.Fatalf("got %v, want an AmbiguousTag diagnostic", err)
	}
}

func TestResolveTag_EtaExpandsNonUnitNullaryCase(t *testing.T) {
	prog := buildProgram(t, func(b *ast.Builder) {
		b.AddEnum(sym.Root(), &ast.EnumDecl{
			Name: "Option",
			Cases: []ast.EnumCase{
				{Name: "None"},
				{Name: "Some", Payload: &ast.NamedType{Name: sym.Name{Ident: "Int"}}},
			},
		})
		b.AddDef(sym.Root(), &ast.DefDecl{
			Name: "ctor", Public: true,
			Body: &ast.TagExpr{Tag: "Some"},
		})
	})

	r := resolver.NewResolver(sym.NewRegistry(), prog)
	out := r.ResolveProgram()
	if r.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", r.Bag.Errors())
	}

	ctor := out.Namespaces[""].Defs[0]
	lam, ok := ctor.Body.(*resolver.RLambda)
	if !ok {
		t.Fatalf("got %T, want *resolver.RLambda (eta-expansion)", ctor.Body)
	}
	if len(lam.Params) != 1 {
		t.Fatalf("got %d lambda params, want 1", len(lam.Params))
	}
	tag, ok := lam.Body.(*resolver.RTag)
	if !ok {
		t.Fatalf("lambda body is %T, want *resolver.RTag", lam.Body)
	}
	if v, ok := tag.Payload.(*resolver.RVar); !ok || v.Sym != lam.Params[0] {
		t.Errorf("eta-expansion payload should reference the synthesized formal")
	}
}

func TestResolveTag_UnitCaseNeedsNoEtaExpansion(t *testing.T) {
	prog := buildProgram(t, func(b *ast.Builder) {
		b.AddEnum(sym.Root(), &ast.EnumDecl{
			Name:  "Signal",
			Cases: []ast.EnumCase{{Name: "Stop"}},
		})
		b.AddDef(sym.Root(), &ast.DefDecl{Name: "s", Public: true, Body: &ast.TagExpr{Tag: "Stop"}})
	})

	r := resolver.NewResolver(sym.NewRegistry(), prog)
	out := r.ResolveProgram()
	if r.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", r.Bag.Errors())
	}
	if _, ok := out.Namespaces[""].Defs[0].Body.(*resolver.RTag); !ok {
		t.Fatalf("got %T, want a direct *resolver.RTag", out.Namespaces[""].Defs[0].Body)
	}
}
