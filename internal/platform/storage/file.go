package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// fileStore persiste todo el mapa en un único archivo JSON.
// El volumen de datos es mínimo (token + principal), así que
// reescribir el archivo completo en cada Set es aceptable.
type fileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

func NewFile(path string) (Store, error) {
	s := &fileStore{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// primer arranque: archivo aún no existe
	case err != nil:
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	default:
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &s.data); err != nil {
				// Archivo corrupto: lo tratamos como sesión perdida,
				// no como error fatal del arranque.
				s.data = make(map[string]string)
			}
		}
	}

	return s, nil
}

func (s *fileStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *fileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.flush()
}

func (s *fileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return s.flush()
}

func (s *fileStore) flush() error {
	b, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("storage: marshal: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("storage: mkdir %s: %w", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("storage: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	return nil
}
