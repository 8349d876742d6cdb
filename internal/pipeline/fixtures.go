package pipeline

import (
	"avncore/internal/ast"
	"avncore/internal/sym"
)

// Fixtures holds the toy pre-resolution programs the CLI can run against
// when no real lexer/parser is wired in (§1 Non-goals; §4.M point 2).
var Fixtures = map[string]func() ast.Program{
	"arithmetic": fixtureArithmetic,
	"option":     fixtureOption,
}

func fixtureArithmetic() ast.Program {
	b := ast.NewBuilder()
	root := sym.Root()
	b.AddDef(root, &ast.DefDecl{
		Name: "answer", Public: true,
		Body: &ast.BinaryExpr{
			Op: ast.OpAdd,
			L:  &ast.LiteralExpr{Kind: ast.LitInt32, Int: 19},
			R:  &ast.LiteralExpr{Kind: ast.LitInt32, Int: 23},
		},
	})
	return b.Build()
}

func fixtureOption() ast.Program {
	b := ast.NewBuilder()
	root := sym.Root()
	b.AddEnum(root, &ast.EnumDecl{
		Name: "Option",
		Cases: []ast.EnumCase{
			{Name: "None"},
			{Name: "Some", Payload: &ast.NamedType{Name: sym.Name{Ident: "Int32"}}},
		},
	})
	b.AddDef(root, &ast.DefDecl{
		Name: "none", Public: true,
		Body: &ast.TagExpr{Tag: "None"},
	})
	return b.Build()
}
