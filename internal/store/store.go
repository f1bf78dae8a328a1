// Package store persists small string values between sessions.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	pferrors "github.com/alexisbeaulieu97/passforge/pkg/errors"
)

// Store is a string key-value capability.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// fileFormat is the on-disk JSON layout.
type fileFormat struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore keeps values in a JSON file and rewrites it atomically on every Set.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	version string
	values  map[string]string
}

// NewFileStore creates a FileStore and loads it from disk if the file exists.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		version: "1.0",
		values:  make(map[string]string),
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, pferrors.NewStoreError("load", "", fmt.Errorf("create store directory: %w", err))
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the store from disk, replacing in-memory values.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return pferrors.NewStoreError("load", "", err)
	}

	var file fileFormat
	if err := json.Unmarshal(data, &file); err != nil {
		return pferrors.NewStoreError("load", "", fmt.Errorf("parse %s: %w", s.path, err))
	}

	if file.Version != "" {
		s.version = file.Version
	}
	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// Get returns the value for key.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and persists the whole store.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	if err := s.saveLocked(); err != nil {
		return pferrors.NewStoreError("set", key, err)
	}
	return nil
}

func (s *FileStore) saveLocked() error {
	data, err := json.MarshalIndent(fileFormat{Version: s.version, Values: s.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}

	return nil
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
