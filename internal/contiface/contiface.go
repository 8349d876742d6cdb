// Package contiface implements the Continuation-Interface Emitter
// (component H): for every distinct arrow type reachable from a resolved
// program, it produces a descriptor naming the interface that a later code
// generation phase would synthesize a body for. This package only produces
// names and shapes; it never emits Go source.
package contiface

import (
	"fmt"
	"sort"

	"avncore/internal/types"
)

// Descriptor names the continuation interface for one arrow type's erased
// result type (§4.H). Arity is the largest parameter count among the arrows
// sharing that erased result; EntryPoint names the method that Signature
// renders as taking only the ambient context.
type Descriptor struct {
	Name       string
	ResultErasure string
	Arity      int
	ResultAccessor string
	EntryPoint     string
}

// resultName erases t to the canonical name used to key the interface:
// primitives erase to themselves, everything else erases to "Object".
func resultName(t types.Type) string {
	switch t := t.(type) {
	case *types.Primitive:
		return t.Kind.String()
	default:
		return "Object"
	}
}

func interfaceName(resultErasure string) string {
	return resultErasure + "Cont"
}

// Emit takes the Arrow types in arrows (typically gathered with
// CollectArrows from a resolved program's declared types) and returns one
// Descriptor per distinct erased result, deduplicated and sorted for
// determinism. It does not walk into the arrows itself.
func Emit(arrows []*types.Arrow) []Descriptor {
	seen := map[string]Descriptor{}
	for _, a := range arrows {
		erasure := resultName(a.Result)
		name := interfaceName(erasure)
		d, ok := seen[name]
		if !ok {
			d = Descriptor{
				Name:           name,
				ResultErasure:  erasure,
				Arity:          len(a.Params),
				ResultAccessor: "Result",
				EntryPoint:     "Enter",
			}
		} else if len(a.Params) > d.Arity {
			d.Arity = len(a.Params)
		}
		seen[name] = d
	}

	out := make([]Descriptor, 0, len(seen))
	for _, d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CollectArrows walks t and every type reachable through Tuple/App/Arrow
// nesting, returning every Arrow encountered in walk order; an arrow
// reached twice appears twice. It does not descend
// into EnumRef's type arguments, since enum payload shapes are not
// continuation-bearing (§4.H only concerns call/return arrows).
func CollectArrows(t types.Type) []*types.Arrow {
	var out []*types.Arrow
	var walk func(types.Type)
	walk = func(t types.Type) {
		switch t := t.(type) {
		case *types.Arrow:
			out = append(out, t)
			for _, p := range t.Params {
				walk(p)
			}
			walk(t.Result)
		case *types.Tuple:
			for _, e := range t.Elems {
				walk(e)
			}
		case *types.App:
			walk(t.Base)
			walk(t.Arg)
		case *types.Array:
			walk(t.Elem)
		case *types.Ref:
			walk(t.Elem)
		}
	}
	walk(t)
	return out
}

// Signature renders a Descriptor's Go-shaped interface signature for
// diagnostics and golden-file tests; it is not used to generate real code.
func (d Descriptor) Signature() string {
	return fmt.Sprintf("type %s interface { %s() %s; %s(ctx Context) }",
		d.Name, d.ResultAccessor, d.ResultErasure, d.EntryPoint)
}
