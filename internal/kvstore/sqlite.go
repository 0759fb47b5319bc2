package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const (
	defaultPingTimeout = 5 * time.Second

	ensureSchema = `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`
)

// SQLiteBackend stores keys in a single-file SQLite database. SQLite allows
// one writer at a time, so the pool is capped at a single connection.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) the store file at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteBackend, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteBackend{db: db}, nil
}

// Ensure creates the kv table if it does not exist. Safe to call on a store
// already managed by migrations.
func (b *SQLiteBackend) Ensure(ctx context.Context) error {
	_, err := b.db.ExecContext(ctx, ensureSchema)
	return err
}

// Get returns the value stored under key.
func (b *SQLiteBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT value FROM kv WHERE key = ?`
	var value []byte
	err := b.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (b *SQLiteBackend) Put(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err := b.db.ExecContext(ctx, query, key, value)
	return err
}

// Delete removes the value stored under key.
func (b *SQLiteBackend) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv WHERE key = ?`
	_, err := b.db.ExecContext(ctx, query, key)
	return err
}

// Close closes the underlying database.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
