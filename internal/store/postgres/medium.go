// Package postgres provides a Postgres-backed key-value medium mirroring the
// sqlite layout, for deployments that already run a server.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"fieldcrm/pkg/domain"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

var _ domain.Medium = (*Medium)(nil)

const defaultDSN = "postgres://localhost/fieldcrm?sslmode=disable"

// Medium stores payloads in a fieldcrm_kv(key, payload) table.
type Medium struct {
	db *sql.DB
	mu sync.Mutex
}

// Open connects using the provided DSN (falls back to a local default) and
// ensures the kv table exists.
func Open(dsn string) (*Medium, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS fieldcrm_kv (
		key TEXT PRIMARY KEY,
		payload BYTEA NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &Medium{db: db}, nil
}

// Read implements domain.Medium.
func (m *Medium) Read(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var payload []byte
	err := m.db.QueryRow(`SELECT payload FROM fieldcrm_kv WHERE key = $1`, key).Scan(&payload)
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
		`INSERT INTO fieldcrm_kv(key, payload) VALUES($1, $2) ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
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
	if _, err := m.db.Exec(`DELETE FROM fieldcrm_kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close implements domain.Medium.
func (m *Medium) Close() error { return m.db.Close() }

// DB exposes the underlying handle for integration testing hooks.
func (m *Medium) DB() *sql.DB { return m.db }
