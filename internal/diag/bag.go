package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Bag accumulates user diagnostics across an entire resolution pass, per
// §4.I and the two-class error model of §7: as many Errors as possible are
// collected, while an Internal halts the pass immediately.
type Bag struct {
	errors   []*Error
	internal *Internal
}

// NewBag returns an empty diagnostic bag.
func NewBag() *Bag { return &Bag{} }

// Add records a user diagnostic and continues the pass.
func (b *Bag) Add(e *Error) { b.errors = append(b.errors, e) }

// Fail records the fatal internal error that terminated the pass. Only the
// first call has an effect — once a pass has failed internally, later calls
// are redundant noise from unwinding callers.
func (b *Bag) Fail(e *Internal) {
	if b.internal == nil {
		b.internal = e
	}
}

// Errors returns the accumulated user diagnostics.
func (b *Bag) Errors() []*Error { return b.errors }

// Internal returns the fatal internal error, if the pass failed, or nil.
func (b *Bag) Internal() *Internal { return b.internal }

// HasErrors reports whether any user diagnostic or internal failure was
// recorded.
func (b *Bag) HasErrors() bool { return len(b.errors) > 0 || b.internal != nil }

// Render writes a human-readable report to w, colorized with ANSI escapes
// when color is true.
func (b *Bag) Render(w io.Writer, color bool) {
	for _, e := range b.errors {
		if color {
			fmt.Fprintf(w, "\x1b[31merror[%s]\x1b[0m: %s\n", e.Tag, e)
		} else {
			fmt.Fprintf(w, "error[%s]: %s\n", e.Tag, e)
		}
	}
	if b.internal != nil {
		if color {
			fmt.Fprintf(w, "\x1b[35minternal error[%s]\x1b[0m: %s\n", b.internal.Tag, b.internal)
		} else {
			fmt.Fprintf(w, "internal error[%s]: %s\n", b.internal.Tag, b.internal)
		}
	}
}

// ShouldColorize decides whether f (expected to be os.Stdout or os.Stderr)
// should receive ANSI color codes: never when piped or redirected, per the
// usual CLI convention, using go-isatty for the terminal check.
func ShouldColorize(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
