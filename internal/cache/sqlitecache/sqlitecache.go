// Package sqlitecache is the modernc.org/sqlite-backed cache.Backend
// (§4.K), the default on-disk cache at ~/.cache/avncore/resolve.db.
package sqlitecache

import (
	"database/sql"
	"encoding/hex"
	"fmt"

	_ "modernc.org/sqlite"
)

// Backend is a cache.Backend implementation storing records in a single
// SQLite table, keyed by the hex-encoded blake2b digest.
type Backend struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures the cache table exists.
func Open(path string) (*Backend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlitecache: opening %s: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS resolve_cache (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlitecache: creating table: %w", err)
	}
	return &Backend{db: db}, nil
}

// Get implements cache.Backend.
func (b *Backend) Get(key [32]byte) ([]byte, bool, error) {
	var value []byte
	err := b.db.QueryRow(`SELECT value FROM resolve_cache WHERE key = ?`, hex.EncodeToString(key[:])).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("sqlitecache: querying: %w", err)
	default:
		return value, true, nil
	}
}

// Put implements cache.Backend.
func (b *Backend) Put(key [32]byte, value []byte) error {
	_, err := b.db.Exec(`INSERT INTO resolve_cache (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, hex.EncodeToString(key[:]), value)
	if err != nil {
		return fmt.Errorf("sqlitecache: inserting: %w", err)
	}
	return nil
}

// Close implements cache.Backend.
func (b *Backend) Close() error { return b.db.Close() }
