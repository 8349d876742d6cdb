package pipeline

import (
	"avncore/internal/contiface"
	"avncore/internal/resolver"
	"avncore/internal/types"
)

// descriptorsFromRProgram gathers every distinct arrow type reachable from
// a resolved program's declarations and emits a continuation-interface
// descriptor per distinct erased result type (component H).
func descriptorsFromRProgram(rprog *resolver.RProgram) []contiface.Descriptor {
	var arrows []*types.Arrow
	for _, contents := range rprog.Namespaces {
		for _, d := range contents.Defs {
			paramTypes := make([]types.Type, len(d.Params))
			for i, p := range d.Params {
				paramTypes[i] = p.Type
			}
			arrow := &types.Arrow{Params: paramTypes, Result: d.Return}
			arrows = append(arrows, contiface.CollectArrows(arrow)...)
		}
	}
	return contiface.Emit(arrows)
}
