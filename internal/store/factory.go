package store

import (
	"fmt"
	"log/slog"

	"fieldcrm/internal/store/memory"
	"fieldcrm/internal/store/postgres"
	"fieldcrm/internal/store/sqlite"
)

// Driver identifies a concrete key-value medium implementation.
type Driver string

const (
	DriverMemory   Driver = "memory"   // in-memory only (tests / ephemeral)
	DriverSQLite   Driver = "sqlite"   // embedded sqlite file
	DriverPostgres Driver = "postgres" // PostgreSQL server
)

// Open selects and opens a medium for the given driver, defaulting to sqlite
// when unset, and wraps it in a record store.
func Open(driver Driver, sqlitePath, postgresDSN string, log *slog.Logger) (*Store, error) {
	if driver == "" {
		driver = DriverSQLite
	}
	switch driver {
	case DriverMemory:
		return New(memory.New(), log), nil
	case DriverSQLite:
		medium, err := sqlite.Open(sqlitePath)
		if err != nil {
			return nil, err
		}
		return New(medium, log), nil
	case DriverPostgres:
		medium, err := postgres.Open(postgresDSN)
		if err != nil {
			return nil, err
		}
		return New(medium, log), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
