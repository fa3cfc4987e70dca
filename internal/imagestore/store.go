// Package imagestore persists uploaded images as individual files under a
// local directory. Rows in the submissions table reference the returned
// relative paths.
package imagestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type Store struct {
	dir string
}

// New ensures the storage directory exists and returns a store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the image bytes under the storage directory and returns the
// stored relative path. An existing file with the same name is overwritten.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close image file: %w", err)
	}

	return path, nil
}

// Exists reports whether the file at the stored path is still present.
// Files can be removed out-of-band; callers handle absence per row.
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReadFile returns the raw bytes of a stored image.
func (s *Store) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
