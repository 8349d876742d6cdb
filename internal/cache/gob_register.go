package cache

import (
	"encoding/gob"

	"avncore/internal/resolver"
	"avncore/internal/types"
)

// init registers every concrete RExpr and Type implementation so gob can
// encode/decode the interface-typed fields inside a Record. Symbol
// identity itself does not survive a round trip (*sym.Symbol's only
// exported field is Public; gob silently drops its unexported id, kind,
// namespace, identifier and position) — a cache hit is therefore
// only safe to serve back into a fresh run that re-derives references by
// name, never to restore live pointer identity across processes. See
// DESIGN.md.
func init() {
	gob.Register(&resolver.RVar{})
	gob.Register(&resolver.RWild{})
	gob.Register(&resolver.RDef{})
	gob.Register(&resolver.RHole{})
	gob.Register(&resolver.RTag{})
	gob.Register(&resolver.RLambda{})
	gob.Register(&resolver.RApply{})
	gob.Register(&resolver.RUnary{})
	gob.Register(&resolver.RBinary{})
	gob.Register(&resolver.RLet{})
	gob.Register(&resolver.RIf{})
	gob.Register(&resolver.RTuple{})
	gob.Register(&resolver.RGetTupleIndex{})
	gob.Register(&resolver.RSet{})
	gob.Register(&resolver.RCheckTag{})
	gob.Register(&resolver.RGetTagValue{})
	gob.Register(&resolver.RLiteral{})
	gob.Register(&resolver.RError{})
	gob.Register(&resolver.RMatchError{})

	gob.Register(&types.Primitive{})
	gob.Register(&types.Array{})
	gob.Register(&types.Native{})
	gob.Register(&types.Ref{})
	gob.Register(&types.EnumRef{})
	gob.Register(&types.Tuple{})
	gob.Register(&types.Arrow{})
	gob.Register(&types.App{})
}
