package cache_test

import (
	"testing"

	"avncore/internal/ast"
	"avncore/internal/cache"
	"avncore/internal/sym"
)

type memBackend struct {
	data map[[32]byte][]byte
}

func newMemBackend() *memBackend { return &memBackend{data: make(map[[32]byte][]byte)} }

func (m *memBackend) Get(key [32]byte) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}
func (m *memBackend) Put(key [32]byte, value []byte) error {
	m.data[key] = value
	return nil
}
func (m *memBackend) Close() error { return nil }

func buildProgram(fill func(b *ast.Builder)) ast.Program {
	b := ast.NewBuilder()
	fill(b)
	return b.Build()
}

func TestKey_IsDeterministicAndOrderIndependent(t *testing.T) {
	progA := buildProgram(func(b *ast.Builder) {
		b.AddDef(sym.Root(), &ast.DefDecl{Name: "a", Public: true})
		b.AddDef(sym.NS("X"), &ast.DefDecl{Name: "b", Public: false})
	})
	progB := buildProgram(func(b *ast.Builder) {
		b.AddDef(sym.NS("X"), &ast.DefDecl{Name: "b", Public: false})
		b.AddDef(sym.Root(), &ast.DefDecl{Name: "a", Public: true})
	})

	if cache.Key(progA) != cache.Key(progB) {
		t.Errorf("Key should not depend on insertion order")
	}
}

func TestKey_ChangesWithContent(t *testing.T) {
	progA := buildProgram(func(b *ast.Builder) {
		b.AddDef(sym.Root(), &ast.DefDecl{Name: "a", Public: true})
	})
	progB := buildProgram(func(b *ast.Builder) {
		b.AddDef(sym.Root(), &ast.DefDecl{Name: "a", Public: false})
	})

	if cache.Key(progA) == cache.Key(progB) {
		t.Errorf("Key should change when a def's publicity changes")
	}
}

func TestStore_PutThenGetRoundTrips(t *testing.T) {
	prog := buildProgram(func(b *ast.Builder) {
		b.AddDef(sym.Root(), &ast.DefDecl{Name: "a", Public: true})
	})
	store := cache.NewStore(newMemBackend())

	if err := store.Put(prog, &cache.Record{}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	_, ok, err := store.Get(prog)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
}

func TestStore_GetMissReportsFalse(t *testing.T) {
	prog := buildProgram(func(b *ast.Builder) {
		b.AddDef(sym.Root(), &ast.DefDecl{Name: "never-stored", Public: true})
	})
	store := cache.NewStore(newMemBackend())

	_, ok, err := store.Get(prog)
	if err != nil || ok {
		t.Fatalf("got ok=%v err=%v, want a clean miss", ok, err)
	}
}
