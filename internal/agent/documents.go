package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DocumentStore holds the trip documents, loaded once at startup and
// read-only afterwards. Keys are filenames without the .txt extension,
// kept in sorted order so concatenated context is stable across calls.
type DocumentStore struct {
	keys []string
	docs map[string]string
}

// LoadDocuments reads every .txt file from dataDir into a DocumentStore.
// It fails if the directory is missing or contains no .txt files; the
// caller must not start serving traffic on error.
func LoadDocuments(dataDir string) (*DocumentStore, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", dataDir, err)
	}

	store := &DocumentStore{docs: make(map[string]string)}

	// os.ReadDir returns entries sorted by filename, which fixes the
	// document order for the lifetime of the process.
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dataDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s: %w", entry.Name(), err)
		}

		key := strings.TrimSuffix(entry.Name(), ".txt")
		store.keys = append(store.keys, key)
		store.docs[key] = string(content)
	}

	if len(store.keys) == 0 {
		return nil, fmt.Errorf("no .txt documents found in %s", dataDir)
	}

	return store, nil
}

// NewDocumentStore builds a store from an explicit key order and contents.
// Used by tests and tools that do not load from disk.
func NewDocumentStore(keys []string, docs map[string]string) *DocumentStore {
	store := &DocumentStore{docs: make(map[string]string, len(keys))}
	for _, key := range keys {
		if content, ok := docs[key]; ok {
			store.keys = append(store.keys, key)
			store.docs[key] = content
		}
	}
	return store
}

// Get returns the document for key, reporting whether it exists.
func (s *DocumentStore) Get(key string) (string, bool) {
	content, ok := s.docs[key]
	return content, ok
}

// Keys returns the document keys in load order.
func (s *DocumentStore) Keys() []string {
	return s.keys
}

// Len returns the number of loaded documents.
func (s *DocumentStore) Len() int {
	return len(s.keys)
}
