package core

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"fieldcrm/internal/blob"
	"fieldcrm/pkg/domain"
)

func TestExportImportRoundTrip(t *testing.T) {
	src, clock := newTestService(t)
	src.Visits().Create(domain.Visit{Date: "2024-03-10", Status: domain.VisitPlanned, RepresentativeID: "rep_001"})
	src.Orders().Create(domain.Order{Date: "2024-03-11", Status: domain.OrderPending, RepresentativeID: "rep_001"})
	src.Goals().Create(domain.Goal{Title: "March visits", Status: domain.GoalActive})

	payload, err := src.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		t.Fatalf("export not valid JSON: %v", err)
	}
	if len(snap.Visits) != 1 || len(snap.Orders) != 1 || len(snap.Goals) != 1 {
		t.Fatalf("export contents: %d visits, %d orders, %d goals", len(snap.Visits), len(snap.Orders), len(snap.Goals))
	}
	if !snap.ExportDate.Equal(clock.Now()) {
		t.Fatalf("export date: %v", snap.ExportDate)
	}
	if !strings.Contains(string(payload), "\n  \"visits\"") {
		t.Fatalf("export not indented:\n%s", payload[:80])
	}

	dst, _ := newTestService(t)
	dst.Visits().Create(domain.Visit{Date: "2020-01-01", Status: domain.VisitCancelled})
	if err := dst.Import(payload); err != nil {
		t.Fatalf("Import: %v", err)
	}
	visits := dst.Visits().List(nil, nil, nil)
	if len(visits) != 1 || visits[0].Date != "2024-03-10" {
		t.Fatalf("import did not replace visits: %+v", visits)
	}
	if got := dst.Orders().List(nil, nil, nil); len(got) != 1 {
		t.Fatalf("orders not imported: %d", len(got))
	}
}

func TestImportPartialDocument(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Visits().Create(domain.Visit{Date: "2024-03-10", Status: domain.VisitPlanned})
	svc.Goals().Create(domain.Goal{Title: "keep me", Status: domain.GoalActive})

	// Only visits present: goals stay untouched.
	if err := svc.Import([]byte(`{"visits": []}`)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if got := svc.Visits().List(nil, nil, nil); len(got) != 0 {
		t.Fatalf("visits not replaced: %d", len(got))
	}
	if got := svc.Goals().List(nil, nil, nil); len(got) != 1 {
		t.Fatalf("goals were touched: %d", len(got))
	}
}

func TestImportMalformedDocument(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Visits().Create(domain.Visit{Date: "2024-03-10", Status: domain.VisitPlanned})

	if err := svc.Import([]byte("{broken")); err == nil {
		t.Fatalf("malformed import succeeded")
	}
	if got := svc.Visits().List(nil, nil, nil); len(got) != 1 {
		t.Fatalf("malformed import modified data: %d visits", len(got))
	}
}

func TestClearAllRemovesEverything(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Seed()
	svc.Visits().Create(domain.Visit{Date: "2024-03-10", Status: domain.VisitPlanned})

	if err := svc.ClearAll(); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	if got := svc.Visits().List(nil, nil, nil); len(got) != 0 {
		t.Fatalf("visits survived clear: %d", len(got))
	}
	if got := svc.Representatives().List(nil, nil, nil); len(got) != 0 {
		t.Fatalf("representatives survived clear: %d", len(got))
	}
	if _, ok := svc.CurrentUser(); ok {
		t.Fatalf("current user survived clear")
	}
}

func TestArchiveExportRestore(t *testing.T) {
	ctx := context.Background()
	archive := blob.NewMemory()

	src, _ := newTestService(t)
	src.Visits().Create(domain.Visit{Date: "2024-03-10", Status: domain.VisitCompleted, RepresentativeID: "rep_001"})

	info, err := src.ArchiveExport(ctx, archive)
	if err != nil {
		t.Fatalf("ArchiveExport: %v", err)
	}
	if !strings.HasPrefix(info.Key, "exports/crm-export-") || !strings.HasSuffix(info.Key, ".json") {
		t.Fatalf("archive key: %s", info.Key)
	}
	if info.ContentType != "application/json" || info.Size == 0 {
		t.Fatalf("archive info: %+v", info)
	}

	dst, _ := newTestService(t)
	if err := dst.RestoreArchive(ctx, archive, info.Key); err != nil {
		t.Fatalf("RestoreArchive: %v", err)
	}
	visits := dst.Visits().List(nil, nil, nil)
	if len(visits) != 1 || visits[0].Status != domain.VisitCompleted {
		t.Fatalf("restore mismatch: %+v", visits)
	}

	if err := dst.RestoreArchive(ctx, archive, "exports/missing.json"); err == nil {
		t.Fatalf("restore of missing key succeeded")
	}
}
