package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FileStore is a file-based layout store for CLI use.
// Each saved layout is one JSON file in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based layout store.
// If baseDir is empty, defaults to ~/.config/solis/layouts/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "solis", "layouts")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create layout dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) layoutPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// List returns all saved layouts, newest first.
func (s *FileStore) List(ctx context.Context) ([]SavedLayout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read layout dir: %w", err)
	}

	layouts := make([]SavedLayout, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var l SavedLayout
		if err := json.Unmarshal(data, &l); err != nil {
			// Corrupt entries are skipped, not fatal.
			continue
		}
		layouts = append(layouts, l)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].CreatedAt.After(layouts[j].CreatedAt)
	})
	return layouts, nil
}

// Get retrieves a saved layout by ID.
func (s *FileStore) Get(ctx context.Context, id string) (SavedLayout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.layoutPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return SavedLayout{}, notFound(id)
		}
		return SavedLayout{}, fmt.Errorf("read layout file: %w", err)
	}

	var l SavedLayout
	if err := json.Unmarshal(data, &l); err != nil {
		return SavedLayout{}, fmt.Errorf("parse layout %s: %w", id, err)
	}
	return l, nil
}

// Put stores a saved layout.
func (s *FileStore) Put(ctx context.Context, layout SavedLayout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	if err := os.WriteFile(s.layoutPath(layout.ID), data, 0600); err != nil {
		return fmt.Errorf("write layout file: %w", err)
	}
	return nil
}

// Delete removes a saved layout.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.layoutPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove layout file: %w", err)
	}
	return nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// Path returns the base directory for layout files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ LayoutStore = (*FileStore)(nil)
