// Package storage provides JSON file persistence for application state.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

// FileStore reads and writes JSON documents inside a base directory.
// Writes go through a temp file and rename so a crash never leaves a
// half-written document behind. Safe for concurrent use.
type FileStore struct {
	mu  sync.Mutex
	dir string
	log *logger.Logger
}

// NewFileStore creates a store rooted at dir. The directory itself is
// created on the first write.
func NewFileStore(dir string, log *logger.Logger) *FileStore {
	return &FileStore{dir: dir, log: log}
}

// Dir returns the store's base directory.
func (s *FileStore) Dir() string { return s.dir }

// Path returns the absolute path of a named document.
func (s *FileStore) Path(name string) string { return filepath.Join(s.dir, name) }

// Exists reports whether a named document is present.
func (s *FileStore) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Load decodes the named document into v. Returns domain.ErrNotFound
// when the document does not exist.
func (s *FileStore) Load(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("document not found: %s", name)
			return domain.ErrNotFound
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Save encodes v as indented JSON and writes it under the given name.
// Documents may hold API keys, so files are 0600 and the directory 0700.
func (s *FileStore) Save(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	data = append(data, '\n')

	path := s.Path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	s.log.Debug("saved %s (%d bytes)", name, len(data))
	return nil
}

// Remove deletes the named document. Removing a missing document is
// not an error.
func (s *FileStore) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.Path(name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", name, err)
	}
	if err == nil {
		s.log.Debug("removed %s", name)
	}
	return nil
}
