// Package sqlite persists the key-value medium in a single SQLite table as
// JSON payloads, one row per collection key.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fieldcrm/pkg/domain"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

var _ domain.Medium = (*Medium)(nil)

// Medium stores payloads in a kv(key, payload) table.
type Medium struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// Open creates or opens the database file at path, creating parent
// directories as needed.
func Open(path string) (*Medium, error) {
	if path == "" {
		path = "fieldcrm.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &Medium{db: db, path: path}, nil
}

// Read implements domain.Medium.
func (m *Medium) Read(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var payload []byte
	err := m.db.QueryRow(`SELECT payload FROM kv WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", key, err)
	}
	return payload, true, nil
}

// Write implements domain.Medium.
func (m *Medium) Write(key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, err := m.db.Exec(
		`INSERT INTO kv(key, payload) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		key, payload,
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Delete implements domain.Medium.
func (m *Medium) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close implements domain.Medium.
func (m *Medium) Close() error { return m.db.Close() }

// DB exposes the underlying handle for integration testing hooks.
func (m *Medium) DB() *sql.DB { return m.db }

// Path returns the configured database path.
func (m *Medium) Path() string { return m.path }
