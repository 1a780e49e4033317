package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPrefStore(t *testing.T) {
	t.Run("get missing key", func(t *testing.T) {
		store := NewPrefStore(filepath.Join(t.TempDir(), "prefs.json"))

		if _, ok := store.Get("search"); ok {
			t.Error("expected missing key on empty store")
		}
	})

	t.Run("set and get", func(t *testing.T) {
		store := NewPrefStore(filepath.Join(t.TempDir(), "prefs.json"))

		store.Set("search", "acme")
		store.Set("page", "2")

		got, ok := store.Get("search")
		if !ok || got != "acme" {
			t.Errorf("got %q/%v, want acme/true", got, ok)
		}

		got, ok = store.Get("page")
		if !ok || got != "2" {
			t.Errorf("got %q/%v, want 2/true", got, ok)
		}
	})

	t.Run("persists across instances", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.json")

		NewPrefStore(path).Set("sortKey", "name")

		got, ok := NewPrefStore(path).Get("sortKey")
		if !ok || got != "name" {
			t.Errorf("got %q/%v, want name/true", got, ok)
		}
	})

	t.Run("overwrite keeps other keys", func(t *testing.T) {
		store := NewPrefStore(filepath.Join(t.TempDir(), "prefs.json"))

		store.Set("search", "first")
		store.Set("pageSize", "25")
		store.Set("search", "second")

		if got, _ := store.Get("search"); got != "second" {
			t.Errorf("got %q, want second", got)
		}
		if got, _ := store.Get("pageSize"); got != "25" {
			t.Errorf("got %q, want 25", got)
		}
	})

	t.Run("empty value round-trips", func(t *testing.T) {
		store := NewPrefStore(filepath.Join(t.TempDir(), "prefs.json"))

		store.Set("search", "")
		got, ok := store.Get("search")
		if !ok || got != "" {
			t.Errorf("got %q/%v, want \"\"/true", got, ok)
		}
	})

	t.Run("corrupt file reads as empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		store := NewPrefStore(path)
		if _, ok := store.Get("search"); ok {
			t.Error("expected missing key on corrupt file")
		}

		// Writes still work after corruption.
		store.Set("search", "recovered")
		if got, _ := store.Get("search"); got != "recovered" {
			t.Errorf("got %q, want recovered", got)
		}
	})

	t.Run("creates parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.json")

		NewPrefStore(path).Set("page", "1")

		if _, err := os.Stat(path); err != nil {
			t.Errorf("prefs file not created: %v", err)
		}
	})
}
