// Package pqcache is the github.com/lib/pq-backed cache.Backend (§4.K),
// used when the configured cache backend is "postgres" (the connection
// string comes from CacheDSN, e.g. via AVNCORE_CACHE_DSN) so a build farm
// can share one resolution cache across hosts.
package pqcache

import (
	"database/sql"
	"encoding/hex"
	"fmt"

	_ "github.com/lib/pq"
)

// Backend is a cache.Backend implementation storing records in a single
// Postgres table, keyed by the hex-encoded blake2b digest.
type Backend struct {
	db *sql.DB
}

// Open opens a connection to dsn and ensures the cache table exists.
func Open(dsn string) (*Backend, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("pqcache: opening %s: %w", dsn, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS resolve_cache (
		key   TEXT PRIMARY KEY,
		value BYTEA NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("pqcache: creating table: %w", err)
	}
	return &Backend{db: db}, nil
}

// Get implements cache.Backend.
func (b *Backend) Get(key [32]byte) ([]byte, bool, error) {
	var value []byte
	err := b.db.QueryRow(`SELECT value FROM resolve_cache WHERE key = $1`, hex.EncodeToString(key[:])).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("pqcache: querying: %w", err)
	default:
		return value, true, nil
	}
}

// Put implements cache.Backend.
func (b *Backend) Put(key [32]byte, value []byte) error {
	_, err := b.db.Exec(`INSERT INTO resolve_cache (key, value) VALUES ($1, $2)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, hex.EncodeToString(key[:]), value)
	if err != nil {
		return fmt.Errorf("pqcache: inserting: %w", err)
	}
	return nil
}

// Close implements cache.Backend.
func (b *Backend) Close() error { return b.db.Close() }
