package resolver

import (
	"sort"

	"avncore/internal/ast"
	"avncore/internal/diag"
	"avncore/internal/sym"
	"avncore/internal/token"
)

// candidate is one enum declaration (and the namespace it lives in) that
// declares a given tag name.
type candidate struct {
	ns   sym.Namespace
	decl *ast.EnumDecl
}

// Disambiguator implements component D: given a tag name and an optional
// enum qualifier, it finds the unique enum declaring that tag.
type Disambiguator struct {
	Program ast.Program
}

// NewDisambiguator returns a tag disambiguator over prog.
func NewDisambiguator(prog ast.Program) *Disambiguator {
	return &Disambiguator{Program: prog}
}

func (d *Disambiguator) allDeclaring(tag string) []candidate {
	var out []candidate
	d.Program.Range(func(ns sym.Namespace, c *ast.NamespaceContents) bool {
		for _, e := range c.Enums {
			for _, tc := range e.Cases {
				if tc.Name == tag {
					out = append(out, candidate{ns: ns, decl: e})
					break
				}
			}
		}
		return true
	})
	return out
}

func restrictToNamespace(cands []candidate, ns sym.Namespace) []candidate {
	var out []candidate
	for _, c := range cands {
		if c.ns.Equal(ns) {
			out = append(out, c)
		}
	}
	return out
}

// Find resolves (qualifier, tag) as it occurs lexically within currentNS,
// per §4.D. The returned namespace is the declaring enum's namespace.
func (d *Disambiguator) Find(qualifier *sym.Namespace, tag string, currentNS sym.Namespace, pos token.Position) (*ast.EnumDecl, sym.Namespace, error) {
	all := d.allDeclaring(tag)
	if len(all) == 0 {
		return nil, sym.Namespace{}, diag.NewError(diag.UndefinedTag, pos, currentNS, tag, "no enum declares this tag")
	}
	if len(all) == 1 {
		return all[0].decl, all[0].ns, nil
	}

	restrictNS := currentNS
	if qualifier != nil {
		restrictNS = *qualifier
	}
	restricted := restrictToNamespace(all, restrictNS)

	switch len(restricted) {
	case 0:
		if qualifier == nil {
			// Several enums elsewhere declare the tag, none of them here.
			return nil, sym.Namespace{}, ambiguousTagError(all, tag, currentNS, pos)
		}
		return nil, sym.Namespace{}, diag.NewError(diag.UndefinedTag, pos, currentNS, tag, "no enum in the referenced namespace declares this tag")
	case 1:
		return restricted[0].decl, restricted[0].ns, nil
	}

	if qualifier == nil {
		return nil, sym.Namespace{}, ambiguousTagError(restricted, tag, currentNS, pos)
	}

	// §4.D step 6: a qualifier was given but several enums in that
	// namespace still declare the tag — fall back to treating the
	// qualifier's last path segment as the declaring enum's own name.
	if parent, ok := qualifier.Parent(); ok {
		enumName := qualifier.Path[len(qualifier.Path)-1]
		var filtered []candidate
		for _, c := range all {
			if c.ns.Equal(parent) && c.decl.Name == enumName {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) == 1 {
			return filtered[0].decl, filtered[0].ns, nil
		}
	}
	return nil, sym.Namespace{}, ambiguousTagError(restricted, tag, currentNS, pos)
}

func ambiguousTagError(cands []candidate, tag string, currentNS sym.Namespace, pos token.Position) error {
	sort.Slice(cands, func(i, j int) bool {
		if !cands[i].ns.Equal(cands[j].ns) {
			return cands[i].ns.Less(cands[j].ns)
		}
		return cands[i].decl.Name < cands[j].decl.Name
	})
	locs := ""
	for i, c := range cands {
		if i > 0 {
			locs += ", "
		}
		locs += c.ns.String() + "." + c.decl.Name
	}
	return diag.NewError(diag.AmbiguousTag, pos, currentNS, tag, "ambiguous tag, candidates: "+locs)
}
