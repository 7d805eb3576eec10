package storage

import (
	"os"
	"path/filepath"
	"testing"
)

type testDoc struct {
	XP    int `json:"xp"`
	Level int `json:"level"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := map[string]testDoc{
		"111": {XP: 120, Level: 1},
		"222": {XP: 40, Level: 0},
	}

	if err := s.Save("progression", want); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	got := map[string]testDoc{}
	if err := s.Load("progression", &got); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("loaded %d entries, want %d", len(got), len(want))
	}
	for id, doc := range want {
		if got[id] != doc {
			t.Errorf("entry %s = %+v, want %+v", id, got[id], doc)
		}
	}
}

func TestRoundTripEmptyDocument(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("economy", map[string]testDoc{}); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	got := map[string]testDoc{"stale": {XP: 1}}
	got = map[string]testDoc{}
	if err := s.Load("economy", &got); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("loaded %d entries, want 0", len(got))
	}
}

func TestLoadMissingFileKeepsDefault(t *testing.T) {
	s := newTestStore(t)

	got := map[string]testDoc{"default": {XP: 7}}
	if err := s.Load("never-saved", &got); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if got["default"].XP != 7 {
		t.Error("Load() of a missing file should leave the default untouched")
	}
}

func TestLoadMalformedFileKeepsDefault(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(s.Dir(), "broken.json")
	if err := os.WriteFile(path, []byte("{truncated"), 0644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	got := map[string]testDoc{"default": {Level: 3}}
	if err := s.Load("broken", &got); err != nil {
		t.Fatalf("Load() should not propagate parse errors, got: %v", err)
	}
	if got["default"].Level != 3 {
		t.Error("Load() of a malformed file should leave the default untouched")
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("warnings", map[string]testDoc{"1": {}}); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatalf("reading store dir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temporary file %s left behind after Save()", e.Name())
		}
	}
}

func TestSaveOverwritesWhole(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("doc", map[string]testDoc{"a": {XP: 1}, "b": {XP: 2}}); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if err := s.Save("doc", map[string]testDoc{"a": {XP: 9}}); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	got := map[string]testDoc{}
	if err := s.Load("doc", &got); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(got) != 1 || got["a"].XP != 9 {
		t.Errorf("Save() should replace the whole document, got %+v", got)
	}
}
