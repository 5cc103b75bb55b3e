package rules

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Store is the persistence port for rule specifications. The loader
// reads the rules document through it and persists built-in defaults
// through it. Read reports a missing source with an error wrapping
// fs.ErrNotExist.
type Store interface {
	// Read returns the raw rules document.
	Read() ([]byte, error)

	// Write persists a rules document.
	Write(data []byte) error

	// Name identifies the source for logging and format detection; the
	// extension of the name selects JSON (default) or YAML encoding.
	Name() string
}

// FileStore reads and writes a rules file on disk. The write creates
// parent directories as needed.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed rules store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read implements Store.
func (s *FileStore) Read() ([]byte, error) {
	return os.ReadFile(s.path)
}

// Write implements Store.
func (s *FileStore) Write(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Name implements Store.
func (s *FileStore) Name() string {
	return s.path
}

// MemoryStore holds a rules document in memory. Tests use it to exercise
// the loader's missing, valid and corrupt source paths without disk.
type MemoryStore struct {
	name   string
	data   []byte
	exists bool
}

// NewMemoryStore creates an in-memory rules store. A nil data slice
// models a missing source.
func NewMemoryStore(name string, data []byte) *MemoryStore {
	return &MemoryStore{
		name:   name,
		data:   data,
		exists: data != nil,
	}
}

// Read implements Store.
func (s *MemoryStore) Read() ([]byte, error) {
	if !s.exists {
		return nil, fs.ErrNotExist
	}
	return s.data, nil
}

// Write implements Store.
func (s *MemoryStore) Write(data []byte) error {
	s.data = data
	s.exists = true
	return nil
}

// Name implements Store.
func (s *MemoryStore) Name() string {
	return s.name
}
