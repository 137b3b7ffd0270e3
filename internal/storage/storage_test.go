package storage

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	t.Run("Load absent key", func(t *testing.T) {
		_, ok, err := store.Load(ctx, "missing")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if ok {
			t.Error("expected absent key")
		}
	})

	t.Run("Save and load", func(t *testing.T) {
		if err := store.Save(ctx, "k", []byte("v1")); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		blob, ok, err := store.Load(ctx, "k")
		if err != nil || !ok {
			t.Fatalf("Load failed: ok=%v err=%v", ok, err)
		}
		if !bytes.Equal(blob, []byte("v1")) {
			t.Errorf("blob = %q, expected %q", blob, "v1")
		}
	})

	t.Run("Save replaces whole blob", func(t *testing.T) {
		if err := store.Save(ctx, "k", []byte("v2")); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		blob, _, _ := store.Load(ctx, "k")
		if !bytes.Equal(blob, []byte("v2")) {
			t.Errorf("blob = %q, expected replacement %q", blob, "v2")
		}
	})

	t.Run("Clear is idempotent", func(t *testing.T) {
		if err := store.Clear(ctx, "k"); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		if _, ok, _ := store.Load(ctx, "k"); ok {
			t.Error("expected key gone after clear")
		}
		if err := store.Clear(ctx, "k"); err != nil {
			t.Errorf("second Clear failed: %v", err)
		}
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		if err := store.Save(ctx, "copy", []byte("abc")); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		blob, _, _ := store.Load(ctx, "copy")
		blob[0] = 'X'
		fresh, _, _ := store.Load(ctx, "copy")
		if !bytes.Equal(fresh, []byte("abc")) {
			t.Error("mutating a loaded blob must not affect the store")
		}
	})
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(t.TempDir() + "/state.db")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, ok, err := store.Load(ctx, "missing"); err != nil || ok {
		t.Fatalf("Load absent: ok=%v err=%v", ok, err)
	}

	if err := store.Save(ctx, "k", []byte("payload")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	blob, ok, err := store.Load(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Load failed: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(blob, []byte("payload")) {
		t.Errorf("blob = %q, expected %q", blob, "payload")
	}

	if err := store.Save(ctx, "k", []byte("replaced")); err != nil {
		t.Fatalf("replace Save failed: %v", err)
	}
	blob, _, _ = store.Load(ctx, "k")
	if !bytes.Equal(blob, []byte("replaced")) {
		t.Errorf("blob = %q, expected %q", blob, "replaced")
	}

	if err := store.Clear(ctx, "k"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok, _ := store.Load(ctx, "k"); ok {
		t.Error("expected key gone after clear")
	}
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestOpenBackendSelection(t *testing.T) {
	t.Run("Default is memory", func(t *testing.T) {
		store, err := Open(Config{})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer func() { _ = store.Close() }()
		if _, ok := store.(*Memory); !ok {
			t.Errorf("expected *Memory, got %T", store)
		}
	})

	t.Run("SQLite", func(t *testing.T) {
		store, err := Open(Config{Backend: BackendSQLite, Path: t.TempDir() + "/s.db"})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer func() { _ = store.Close() }()
		if _, ok := store.(*SQLite); !ok {
			t.Errorf("expected *SQLite, got %T", store)
		}
	})

	t.Run("Unknown backend", func(t *testing.T) {
		if _, err := Open(Config{Backend: "carrier-pigeon"}); err == nil {
			t.Error("expected error for unknown backend")
		}
	})
}

func TestMemoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	const workers = 32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			blob := []byte(fmt.Sprintf(`{"worker":%d}`, i))
			if err := store.Save(ctx, "shared", blob); err != nil {
				t.Errorf("Save failed: %v", err)
				return
			}
			loaded, ok, err := store.Load(ctx, "shared")
			if err != nil {
				t.Errorf("Load failed: %v", err)
				return
			}
			if !ok || len(loaded) == 0 {
				t.Error("expected a blob after save")
			}
		}(i)
	}
	wg.Wait()

	blob, ok, err := store.Load(ctx, "shared")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a blob after concurrent saves")
	}
	if !bytes.HasPrefix(blob, []byte(`{"worker":`)) {
		t.Errorf("expected an intact blob from one writer, got %q", blob)
	}
}
