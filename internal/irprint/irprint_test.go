package irprint_test

import (
	"strings"
	"testing"

	"avncore/internal/ir2"
	"avncore/internal/irprint"
	"avncore/internal/token"
	"avncore/internal/types"
)

func TestSprint_RendersNestedBinary(t *testing.T) {
	e := ir2.NewBinary(token.Position{}, types.TInt32, ir2.OpAdd,
		ir2.NewInt32(token.Position{}, types.TInt32, 1),
		ir2.NewInt32(token.Position{}, types.TInt32, 2))

	out := irprint.Sprint(e)
	if !strings.Contains(out, "binary +") {
		t.Errorf("output missing operator line: %q", out)
	}
	if !strings.Contains(out, "1") || !strings.Contains(out, "2") {
		t.Errorf("output missing operands: %q", out)
	}
}

func TestSprint_IfThenElse(t *testing.T) {
	e := ir2.IfThenElse{
		Cond: ir2.NewTrue(token.Position{}, types.TBool),
		Then: ir2.NewInt32(token.Position{}, types.TInt32, 1),
		Else: ir2.NewInt32(token.Position{}, types.TInt32, 0),
	}
	out := irprint.Sprint(e)
	for _, want := range []string{"if", "then", "else"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestPrintType(t *testing.T) {
	var sb strings.Builder
	irprint.PrintType(&sb, types.TInt32)
	if sb.String() != "Int32" {
		t.Errorf("got %q, want Int32", sb.String())
	}
}
