// Package prefs is a small persisted key-value store for UI preferences.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore keeps preferences in a YAML file. Every Set rewrites the file so
// values survive a restart.
type FileStore struct {
	path string

	mu     sync.RWMutex
	values map[string]string
}

// Open loads path, treating a missing file as empty.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading prefs: %w", err)
	}
	if err := yaml.Unmarshal(b, &s.values); err != nil {
		return nil, fmt.Errorf("parsing prefs %s: %w", path, err)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.values[key]
	s.values[key] = value
	if err := s.flush(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// flush writes through a temp file so a crash never leaves a torn file.
func (s *FileStore) flush() error {
	b, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encoding prefs: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating prefs dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return fmt.Errorf("creating prefs temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("writing prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing prefs: %w", err)
	}
	return nil
}

// MemStore is an in-process Storage, the equivalent of a session without
// persistence.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (m *MemStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
