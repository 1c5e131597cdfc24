package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"fieldcrm/internal/blob"
	"fieldcrm/pkg/domain"
)

// importDoc mirrors domain.Snapshot with optional collections: a key absent
// from the document leaves the stored collection untouched.
type importDoc struct {
	Visits          *[]domain.Visit          `json:"visits"`
	Orders          *[]domain.Order          `json:"orders"`
	Attendance      *[]domain.Attendance     `json:"attendance"`
	Goals           *[]domain.Goal           `json:"goals"`
	Representatives *[]domain.Representative `json:"representatives"`
}

// Export serializes every collection plus the export instant as indented
// JSON. Collections that fail to load export as empty.
func (s *Service) Export() ([]byte, error) {
	start := s.d.now()
	snap := domain.Snapshot{
		Visits:          loadAll[domain.Visit](&s.d, domain.CollectionVisits),
		Orders:          loadAll[domain.Order](&s.d, domain.CollectionOrders),
		Attendance:      loadAll[domain.Attendance](&s.d, domain.CollectionAttendance),
		Goals:           loadAll[domain.Goal](&s.d, domain.CollectionGoals),
		Representatives: loadAll[domain.Representative](&s.d, domain.CollectionRepresentatives),
		ExportDate:      start,
	}
	payload, err := json.MarshalIndent(snap, "", "  ")
	s.d.observe("snapshot.export", start, err)
	return payload, err
}

// Import replaces stored collections with those present in the document.
// A document that fails to parse modifies nothing. Replacement is
// per-collection, not atomic: a collection written before a later storage
// failure stays written.
func (s *Service) Import(data []byte) error {
	start := s.d.now()
	var doc importDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		err = fmt.Errorf("parse import document: %w", err)
		s.d.observe("snapshot.import", start, err)
		return err
	}
	if doc.Visits != nil {
		saveAll(&s.d, domain.CollectionVisits, *doc.Visits)
	}
	if doc.Orders != nil {
		saveAll(&s.d, domain.CollectionOrders, *doc.Orders)
	}
	if doc.Attendance != nil {
		saveAll(&s.d, domain.CollectionAttendance, *doc.Attendance)
	}
	if doc.Goals != nil {
		saveAll(&s.d, domain.CollectionGoals, *doc.Goals)
	}
	if doc.Representatives != nil {
		saveAll(&s.d, domain.CollectionRepresentatives, *doc.Representatives)
	}
	s.d.observe("snapshot.import", start, nil)
	return nil
}

// ClearAll removes every stored key, the current-user pointer included.
func (s *Service) ClearAll() error {
	start := s.d.now()
	err := s.d.store.Clear(domain.AllKeys()...)
	s.d.observe("snapshot.clear", start, err)
	return err
}

// ArchiveExport writes the current export to the archive store under a
// timestamped key and returns the stored object's metadata.
func (s *Service) ArchiveExport(ctx context.Context, archive blob.Store) (blob.Info, error) {
	payload, err := s.Export()
	if err != nil {
		return blob.Info{}, err
	}
	key := fmt.Sprintf("exports/crm-export-%s.json", s.d.now().UTC().Format("20060102T150405Z"))
	info, err := archive.Put(ctx, key, bytes.NewReader(payload), blob.PutOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return blob.Info{}, fmt.Errorf("archive export: %w", err)
	}
	return info, nil
}

// RestoreArchive loads an archived export and imports it.
func (s *Service) RestoreArchive(ctx context.Context, archive blob.Store, key string) error {
	_, body, err := archive.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("fetch archive %s: %w", key, err)
	}
	defer body.Close()
	payload, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read archive %s: %w", key, err)
	}
	return s.Import(payload)
}
