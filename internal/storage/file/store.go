// Package file provides a file-backed implementation of the
// client-local key/value store.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/lamdoan/classdesk/internal/model"
)

var _ model.KeyValueStore = (*Store)(nil)

// Store persists a flat string map as a JSON file. It holds the two
// session entries (token and serialized user) between runs.
type Store struct {
	path string

	mu      sync.Mutex
	entries map[string]string
}

// NewStore opens the store at path, loading existing entries. A missing
// file is an empty store, not an error.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    path,
		entries: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	return s, nil
}

// Get returns the value for key, or model.ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.entries[key]
	if !ok {
		return "", model.ErrNotFound
	}

	return value, nil
}

// Set stores the value and writes the file through.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value

	return s.flush()
}

// Remove deletes the key and writes the file through. Removing an
// absent key returns model.ErrNotFound.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return model.ErrNotFound
	}
	delete(s.entries, key)

	return s.flush()
}

// flush writes the entries to disk; callers hold the mutex.
func (s *Store) flush() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}
