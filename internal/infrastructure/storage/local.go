// Package storage keeps uploaded attachment files on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// LocalStorage writes files under a single directory, created on demand.
type LocalStorage struct {
	dir string
	now func() time.Time
}

func NewLocalStorage(dir string) *LocalStorage {
	if dir == "" {
		dir = "uploads"
	}
	return &LocalStorage{dir: dir, now: time.Now}
}

func (s *LocalStorage) Dir() string {
	return s.dir
}

// GenerateName returns "{epoch-ms}-{random}{ext}", keeping the lower-cased
// extension of the original name.
func (s *LocalStorage) GenerateName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + strconv.FormatInt(rand.Int64N(1_000_000_000), 10) + ext
}

// Save copies r to a freshly named file and returns its name and path.
func (s *LocalStorage) Save(originalName string, r io.Reader) (name, path string, err error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name = s.GenerateName(originalName)
	path = filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("failed to close file: %w", err)
	}

	return name, path, nil
}

func (s *LocalStorage) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat file: %w", err)
}

// Remove deletes path. A file that is already gone is not an error.
func (s *LocalStorage) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
