package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	fsStore, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystem: %v", err)
	}
	return map[string]Store{
		"fs":     fsStore,
		"memory": NewMemory(),
	}
}

func TestStoreConformance(t *testing.T) {
	ctx := context.Background()
	for name, st := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			body := `{"visits": []}`
			info, err := st.Put(ctx, "exports/a.json", strings.NewReader(body), PutOptions{ContentType: "application/json"})
			if err != nil {
				t.Fatalf("Put: %v", err)
			}
			if info.Key != "exports/a.json" || info.Size != int64(len(body)) {
				t.Fatalf("put info: %+v", info)
			}

			// Create-only: a second put on the same key fails.
			if _, err := st.Put(ctx, "exports/a.json", strings.NewReader("x"), PutOptions{}); err == nil {
				t.Fatalf("second put succeeded")
			}

			got, rc, err := st.Get(ctx, "exports/a.json")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			data, err := io.ReadAll(rc)
			_ = rc.Close()
			if err != nil || string(data) != body {
				t.Fatalf("get contents: %q err=%v", data, err)
			}
			if got.ContentType != "application/json" {
				t.Fatalf("content type: %q", got.ContentType)
			}

			if _, err := st.Head(ctx, "exports/a.json"); err != nil {
				t.Fatalf("Head: %v", err)
			}
			if _, _, err := st.Get(ctx, "exports/missing.json"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("missing get: %v", err)
			}

			if _, err := st.Put(ctx, "exports/b.json", strings.NewReader("{}"), PutOptions{}); err != nil {
				t.Fatalf("Put b: %v", err)
			}
			if _, err := st.Put(ctx, "other/c.json", strings.NewReader("{}"), PutOptions{}); err != nil {
				t.Fatalf("Put c: %v", err)
			}
			infos, err := st.List(ctx, "exports/")
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(infos) != 2 || infos[0].Key != "exports/a.json" || infos[1].Key != "exports/b.json" {
				t.Fatalf("list contents: %+v", infos)
			}

			removed, err := st.Delete(ctx, "exports/a.json")
			if err != nil || !removed {
				t.Fatalf("Delete: removed=%v err=%v", removed, err)
			}
			removed, err = st.Delete(ctx, "exports/a.json")
			if err != nil || removed {
				t.Fatalf("second delete: removed=%v err=%v", removed, err)
			}
		})
	}
}

func TestFilesystemRejectsBadKeys(t *testing.T) {
	ctx := context.Background()
	st, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystem: %v", err)
	}
	for _, key := range []string{"", "   ", "../escape", "/absolute", "a/../../b"} {
		if _, err := st.Put(ctx, key, strings.NewReader("x"), PutOptions{}); err == nil {
			t.Fatalf("key %q accepted", key)
		}
	}
}

func TestOpenSelectsDriver(t *testing.T) {
	ctx := context.Background()

	st, err := Open(ctx, Options{Driver: DriverMemory})
	if err != nil || st.Driver() != DriverMemory {
		t.Fatalf("memory driver: %v %v", st, err)
	}

	st, err = Open(ctx, Options{Driver: DriverFilesystem, FSRoot: t.TempDir()})
	if err != nil || st.Driver() != DriverFilesystem {
		t.Fatalf("fs driver: %v %v", st, err)
	}

	if _, err := Open(ctx, Options{Driver: Driver("bogus")}); err == nil {
		t.Fatalf("bogus driver accepted")
	}
}
