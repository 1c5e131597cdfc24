package sqlite

import (
	"path/filepath"
	"testing"
)

func TestMediumRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm", "state.db")
	medium, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() {
		if err := medium.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}()

	if _, ok, err := medium.Read("crm_visits"); err != nil || ok {
		t.Fatalf("fresh database: ok=%v err=%v", ok, err)
	}

	if err := medium.Write("crm_visits", []byte(`[{"id":"v1"}]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	payload, ok, err := medium.Read("crm_visits")
	if err != nil || !ok {
		t.Fatalf("Read: ok=%v err=%v", ok, err)
	}
	if string(payload) != `[{"id":"v1"}]` {
		t.Fatalf("payload mismatch: %s", payload)
	}

	// Upsert replaces the payload in place.
	if err := medium.Write("crm_visits", []byte(`[]`)); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	payload, _, _ = medium.Read("crm_visits")
	if string(payload) != `[]` {
		t.Fatalf("upsert mismatch: %s", payload)
	}

	if err := medium.Delete("crm_visits"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := medium.Read("crm_visits"); ok {
		t.Fatalf("key survived delete")
	}
}

func TestMediumPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	medium, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := medium.Write("crm_goals", []byte(`[{"id":"g1"}]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := medium.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	payload, ok, err := reopened.Read("crm_goals")
	if err != nil || !ok {
		t.Fatalf("Read after reopen: ok=%v err=%v", ok, err)
	}
	if string(payload) != `[{"id":"g1"}]` {
		t.Fatalf("payload lost across reopen: %s", payload)
	}
}
