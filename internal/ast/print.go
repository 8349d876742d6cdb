package ast

import (
	"fmt"
	"io"
	"strings"

	"avncore/internal/sym"
)

// Dump returns a human-readable, indentation-based representation of a
// pre-resolution program, used by diagnostics when a surface declaration
// needs to be shown to a user.
func Dump(p Program) string {
	var sb strings.Builder
	dumpProgram(&sb, p)
	return sb.String()
}

func dumpProgram(w io.Writer, p Program) {
	fmt.Fprintf(w, "Program\n")
	p.Range(func(ns sym.Namespace, c *NamespaceContents) bool {
		fmt.Fprintf(w, "  namespace %s\n", ns.String())
		for _, d := range c.AllDecls() {
			dumpDecl(w, d, 2)
		}
		return true
	})
}

func dumpDecl(w io.Writer, d Decl, indent int) {
	ind := strings.Repeat("  ", indent)
	pub := ""
	if d.IsPublic() {
		pub = " pub"
	}
	switch d := d.(type) {
	case *DefDecl:
		fmt.Fprintf(w, "%sdef%s %s(%d params)\n", ind, pub, d.Name, len(d.Params))
	case *EnumDecl:
		fmt.Fprintf(w, "%senum%s %s (%d cases)\n", ind, pub, d.Name, len(d.Cases))
	case *LatticeDecl:
		fmt.Fprintf(w, "%slattice%s %s\n", ind, pub, d.Name)
	case *IndexDecl:
		fmt.Fprintf(w, "%sindex%s %s\n", ind, pub, d.Name)
	case *TableDecl:
		fmt.Fprintf(w, "%stable%s %s\n", ind, pub, d.Name)
	case *ConstraintDecl:
		fmt.Fprintf(w, "%sconstraint%s %s\n", ind, pub, d.Name)
	case *PropertyDecl:
		fmt.Fprintf(w, "%sproperty%s %s\n", ind, pub, d.Name)
	case *NamedExprDecl:
		fmt.Fprintf(w, "%s%s = <expr>\n", ind, d.Name)
	case *HookDecl:
		fmt.Fprintf(w, "%shook %s : %s\n", ind, d.Name, DumpType(d.Type))
	}
}
