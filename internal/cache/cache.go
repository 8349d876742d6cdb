// Package cache implements the Incremental Resolution Cache ambient
// component (§4.K): a content-addressed store keyed by a blake2b digest of
// a pre-resolution program's canonical serialization, fronting two interchangeable
// backends (modernc.org/sqlite and lib/pq).
package cache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sort"

	"golang.org/x/crypto/blake2b"

	"avncore/internal/ast"
	"avncore/internal/pipeline"
	"avncore/internal/resolver"
	"avncore/internal/sym"
)

// Backend is satisfied by every concrete cache storage implementation.
type Backend interface {
	Get(key [32]byte) ([]byte, bool, error)
	Put(key [32]byte, value []byte) error
	Close() error
}

// Record is what Store persists per cache hit: the post-resolution program
// and the timing breakdown the original run recorded, so a cached run can
// still render that run's timing table without re-running A-E.
type Record struct {
	Program resolver.RProgram
	Timings pipeline.Timings
}

// Store wraps a Backend with the key derivation and gob encoding needed to
// persist and recover a Record.
type Store struct {
	Backend Backend
}

// NewStore returns a Store fronting backend.
func NewStore(backend Backend) *Store { return &Store{Backend: backend} }

// Key derives the content-addressed cache key for prog: a blake2b-256
// digest over a canonical, order-independent serialization of its
// namespace multimap (§4.K).
func Key(prog ast.Program) [32]byte {
	var buf bytes.Buffer
	namespaces := prog.Namespaces()
	sorted := make([]sym.Namespace, len(namespaces))
	copy(sorted, namespaces)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	for _, ns := range sorted {
		fmt.Fprintf(&buf, "ns %s\n", ns.String())
		c := prog.Namespace(ns)
		fmt.Fprintf(&buf, "  defs %d\n", len(c.Defs))
		for _, d := range c.Defs {
			fmt.Fprintf(&buf, "    def %s pub=%v params=%d\n", d.Name, d.Public, len(d.Params))
		}
		fmt.Fprintf(&buf, "  enums %d\n", len(c.Enums))
		for _, e := range c.Enums {
			fmt.Fprintf(&buf, "    enum %s pub=%v cases=%d\n", e.Name, e.Public, len(e.Cases))
		}
		fmt.Fprintf(&buf, "  lattices %d tables %d indices %d constraints %d properties %d named %d hooks %d\n",
			len(c.Lattices), len(c.Tables), len(c.Indices), len(c.Constraints), len(c.Properties), len(c.Named), len(c.Hooks))
	}

	return blake2b.Sum256(buf.Bytes())
}

// Get attempts to recover a previously-stored resolution result for prog.
func (s *Store) Get(prog ast.Program) (*Record, bool, error) {
	key := Key(prog)
	raw, ok, err := s.Backend.Get(key)
	if err != nil || !ok {
		return nil, ok, err
	}
	var rec Record
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&rec); err != nil {
		return nil, false, fmt.Errorf("cache: decoding record: %w", err)
	}
	return &rec, true, nil
}

// Put persists rec under prog's content-addressed key.
func (s *Store) Put(prog ast.Program, rec *Record) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return fmt.Errorf("cache: encoding record: %w", err)
	}
	return s.Backend.Put(Key(prog), buf.Bytes())
}
