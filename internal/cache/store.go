package cache

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by a Store when the key has never been written.
var ErrNotFound = errors.New("cache: key not found")

// Store is the raw key/value layer under the menu cache. The storefront's
// localStorage maps onto a single JSON file here; tests use the in-memory
// implementation.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
}

// FileStore keeps one JSON file per key under a directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *FileStore) Set(key string, data []byte) error {
	return os.WriteFile(s.path(key), data, 0o644)
}

// InMemoryStore backs tests and ephemeral deployments.
type InMemoryStore struct {
	data map[string][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string][]byte)}
}

func (s *InMemoryStore) Get(key string) ([]byte, error) {
	data, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (s *InMemoryStore) Set(key string, data []byte) error {
	s.data[key] = data
	return nil
}
