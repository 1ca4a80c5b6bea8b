package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BlobStore is binary file storage addressed by {dir}/{name}. Each video owns
// the directory named after its id, so there is no cross-aggregate contention
// on paths. Delete must be a no-op when the blob is already absent — cleanup
// after an interrupted operation is retried by sweeps.
type BlobStore interface {
	Put(ctx context.Context, dir, name string, r io.Reader) error
	Delete(ctx context.Context, dir, name string) error
	Exists(ctx context.Context, dir, name string) (bool, error)
}

// StoredName generates the name a blob is persisted under: a fresh UUID
// keeping the original file's extension. Uploads never collide with the names
// they replace.
func StoredName(filename string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}

// BlobError reports a failed blob-store operation.
type BlobError struct {
	Op   string // "put" or "delete"
	Path string // {dir}/{name}
	Err  error
}

func (e *BlobError) Error() string {
	return fmt.Sprintf("blob %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *BlobError) Unwrap() error {
	return e.Err
}
