// Package storage provides the durable document store used by every ledger.
// Each document is a named JSON file that is replaced whole on save: the data
// is written to a sibling temporary file and renamed over the target, so a
// reader (or a crash mid-write) sees either the old or the new document,
// never a torn one.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/PancyStudios/CovenBotGo/pkg/logger"
)

// Store reads and writes named JSON documents under a single directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads the named document into v. A missing file or malformed content
// leaves v untouched and returns nil: the caller keeps its default document.
// Corruption is logged, never propagated.
func (s *Store) Load(name string, v interface{}) error {
	path := s.path(name)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn(fmt.Sprintf("Could not read %s, starting empty: %v", name, err), "Storage")
		}
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn(fmt.Sprintf("Document %s is malformed, starting empty: %v", name, err), "Storage")
		return nil
	}
	return nil
}

// Save writes the full document atomically: marshal, write to a temporary
// sibling, then rename over the target.
func (s *Store) Save(name string, v interface{}) error {
	path := s.path(name)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}

// path maps a document name to its file, forcing a .json extension.
func (s *Store) path(name string) string {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return filepath.Join(s.dir, name)
}
