package artifacts

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileStore is a filesystem-backed Store. Addresses are absolute file paths inside baseDir.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a store rooted at baseDir, creating the directory if needed
func NewFileStore(baseDir string) (*FileStore, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve artifact dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to ensure artifact dir: %w", err)
	}
	return &FileStore{baseDir: abs}, nil
}

// Ensure FileStore implements Store
var _ Store = (*FileStore)(nil)

// Put writes to a temp file in the same directory, then renames it into place
func (s *FileStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	path := filepath.Join(s.baseDir, key)

	tmp, err := os.CreateTemp(s.baseDir, "."+key+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp artifact: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("failed to sync artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close artifact: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("failed to commit artifact: %w", err)
	}
	committed = true

	return path, nil
}

// Open opens the file at address
func (s *FileStore) Open(ctx context.Context, address string) (io.ReadCloser, error) {
	path, err := s.resolve(address)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, address)
		}
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}
	return f, nil
}

// Delete removes the file at address; a missing file is not an error
func (s *FileStore) Delete(ctx context.Context, address string) error {
	path, err := s.resolve(address)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete artifact: %w", err)
	}
	return nil
}

// resolve keeps addresses confined to baseDir. Relative addresses are
// looked up by file name inside baseDir.
func (s *FileStore) resolve(address string) (string, error) {
	path := filepath.Clean(address)
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, filepath.Base(path))
	}
	if filepath.Dir(path) != s.baseDir {
		return "", fmt.Errorf("%w: %s is outside the artifact store", ErrArtifactNotFound, address)
	}
	return path, nil
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid artifact key %q", key)
	}
	return nil
}
