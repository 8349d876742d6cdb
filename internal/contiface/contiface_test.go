package contiface_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"avncore/internal/contiface"
	"avncore/internal/types"
)

func TestEmit_DeduplicatesByErasedResult(t *testing.T) {
	arrows := []*types.Arrow{
		{Params: []types.Type{types.TInt32}, Result: types.TBool},
		{Params: []types.Type{types.TInt32, types.TInt32}, Result: types.TBool},
		{Params: []types.Type{types.TStr}, Result: types.TInt32},
	}

	got := contiface.Emit(arrows)
	if len(got) != 2 {
		t.Fatalf("got %d descriptors, want 2: %+v", len(got), got)
	}
	for _, d := range got {
		if d.Name != "BoolCont" && d.Name != "Int32Cont" {
			t.Errorf("unexpected descriptor name %q", d.Name)
		}
		if d.Name == "BoolCont" && d.Arity != 2 {
			t.Errorf("BoolCont arity = %d, want 2 (widest arrow wins)", d.Arity)
		}
	}
}

func TestEmit_CompositeResultErasesToObject(t *testing.T) {
	arrows := []*types.Arrow{
		{Params: nil, Result: &types.Tuple{Elems: []types.Type{types.TInt32, types.TInt32}}},
	}
	got := contiface.Emit(arrows)
	if len(got) != 1 || got[0].Name != "ObjectCont" {
		t.Fatalf("got %+v, want a single ObjectCont descriptor", got)
	}
}

func TestEmit_DescriptorShapeIsStable(t *testing.T) {
	arrows := []*types.Arrow{
		{Params: []types.Type{types.TBool}, Result: types.TInt32},
	}
	got := contiface.Emit(arrows)
	want := []contiface.Descriptor{
		{Name: "Int32Cont", ResultErasure: "Int32", Arity: 1, ResultAccessor: "Result", EntryPoint: "Enter"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectArrows_DescendsThroughNesting(t *testing.T) {
	inner := &types.Arrow{Params: []types.Type{types.TInt32}, Result: types.TBool}
	outer := &types.Tuple{Elems: []types.Type{inner, types.TStr}}

	got := contiface.CollectArrows(outer)
	if len(got) != 1 || got[0] != inner {
		t.Fatalf("got %+v, want exactly [inner]", got)
	}
}
