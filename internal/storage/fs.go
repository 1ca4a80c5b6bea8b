package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FSStore implements BlobStore on the local filesystem under a base directory.
type FSStore struct {
	baseDir string
}

var _ BlobStore = (*FSStore)(nil)

func NewFSStore(baseDir string) *FSStore {
	return &FSStore{baseDir: baseDir}
}

func (s *FSStore) Put(ctx context.Context, dir, name string, r io.Reader) error {
	blobDir := filepath.Join(s.baseDir, dir)
	if err := os.MkdirAll(blobDir, 0o755); err != nil {
		return fmt.Errorf("create blob directory: %w", err)
	}

	f, err := os.Create(filepath.Join(blobDir, name))
	if err != nil {
		return fmt.Errorf("create blob file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write blob file: %w", err)
	}
	return nil
}

// Delete removes a blob. Deleting an absent blob is not an error.
func (s *FSStore) Delete(ctx context.Context, dir, name string) error {
	err := os.Remove(filepath.Join(s.baseDir, dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob file: %w", err)
	}
	return nil
}

func (s *FSStore) Exists(ctx context.Context, dir, name string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.baseDir, dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
