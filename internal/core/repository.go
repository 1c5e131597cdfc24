// Package core implements the CRM data-access service: typed repositories
// over the record store, the check-in protocol, import/export, and the
// derived-metrics engine.
package core

import (
	"log/slog"
	"time"

	"fieldcrm/internal/store"
	"fieldcrm/pkg/domain"
)

// deps bundles the collaborators shared by every repository. All of them are
// injected through the service constructor; there is no global state.
type deps struct {
	store *store.Store
	log   *slog.Logger
	now   func() time.Time
	newID func() string
	obs   Recorder
}

func (d *deps) observe(operation string, start time.Time, err error) {
	d.obs.Observe(operation, err == nil, time.Since(start))
}

// loadAll reads a collection, converting any storage failure into an empty
// sequence. The failure is logged at the boundary; it never reaches callers.
func loadAll[T any](d *deps, key domain.CollectionName) []T {
	records, err := store.ReadAll[T](d.store, key)
	if err != nil {
		d.log.Error("storage read failed, returning empty collection",
			"collection", string(key), "error", err)
		return []T{}
	}
	return records
}

// saveAll writes a collection, swallowing and logging failures. Callers get
// the in-memory result of their operation back even when persistence failed,
// so a successful return never implies durability.
func saveAll[T any](d *deps, key domain.CollectionName, records []T) {
	if err := store.WriteAll(d.store, key, records); err != nil {
		d.log.Error("storage write failed, in-memory result not durable",
			"collection", string(key), "error", err)
	}
}
