// Package token carries source locations through every later phase of the
// pipeline: the named AST, the post-resolution program, and every simplified
// expression node.
package token

import "fmt"

// Position identifies a point in a source file. Lexing and parsing are
// external collaborators (see spec §1): this package only keeps the shape
// that the parser's output is expected to stamp onto every AST node.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsZero reports whether the position carries no location information, e.g.
// for synthesized nodes that have no corresponding source text.
func (p Position) IsZero() bool {
	return p.File == "" && p.Line == 0 && p.Column == 0
}
