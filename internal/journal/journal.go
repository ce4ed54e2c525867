// Package journal persists care log entries for the CLI and session
// layers. The core formatter stays persistence-free; this store only
// keeps what the caregiver explicitly asked to save.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mkozlova/carewatch/internal/notes"
)

// Store is a directory of JSON-encoded care log entries, one file per entry
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Append saves an entry under a timestamp-derived name and returns its id
func (s *Store) Append(entry notes.Entry) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create journal dir: %w", err)
	}

	id := entry.CreatedAt.Format("20060102-150405")
	path := filepath.Join(s.dir, id+".json")

	// Same-second entries get a numeric suffix instead of overwriting
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(s.dir, fmt.Sprintf("%s-%d.json", id, n))
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal entry: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write entry: %w", err)
	}

	return strings.TrimSuffix(filepath.Base(path), ".json"), nil
}

// List returns the ids of all saved entries, newest first
func (s *Store) List() ([]string, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read journal dir: %w", err)
	}

	var ids []string
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(f.Name(), ".json"))
	}

	sort.Sort(sort.Reverse(sort.StringSlice(ids)))
	return ids, nil
}

// Load reads one saved entry by id
func (s *Store) Load(id string) (notes.Entry, error) {
	var entry notes.Entry

	data, err := os.ReadFile(filepath.Join(s.dir, id+".json"))
	if err != nil {
		return entry, fmt.Errorf("read entry: %w", err)
	}

	if err := json.Unmarshal(data, &entry); err != nil {
		return entry, fmt.Errorf("unmarshal entry: %w", err)
	}

	return entry, nil
}
