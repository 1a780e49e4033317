package prefs

import "testing"

func TestMemory(t *testing.T) {
	m := NewMemory()

	if _, ok := m.Get("search"); ok {
		t.Error("expected missing key on empty store")
	}

	m.Set("search", "acme")
	m.Set("page", "3")

	if got, ok := m.Get("search"); !ok || got != "acme" {
		t.Errorf("got %q/%v, want acme/true", got, ok)
	}

	m.Set("search", "")
	if got, ok := m.Get("search"); !ok || got != "" {
		t.Errorf("got %q/%v, want empty/true", got, ok)
	}

	if m.Len() != 2 {
		t.Errorf("got %d keys, want 2", m.Len())
	}
}
