package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_PutThenExists(t *testing.T) {
	store := NewFSStore(t.TempDir())
	ctx := context.Background()

	err := store.Put(ctx, "vid-1", "movie.mp4", strings.NewReader("payload"))
	require.NoError(t, err)

	ok, err := store.Exists(ctx, "vid-1", "movie.mp4")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, "vid-1", "other.mp4")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFSStore_PutWritesContent(t *testing.T) {
	base := t.TempDir()
	store := NewFSStore(base)

	err := store.Put(context.Background(), "vid-1", "thumb.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(base, "vid-1", "thumb.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestFSStore_PutOverwrites(t *testing.T) {
	base := t.TempDir()
	store := NewFSStore(base)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "vid-1", "f.mp4", strings.NewReader("v1")))
	require.NoError(t, store.Put(ctx, "vid-1", "f.mp4", strings.NewReader("v2")))

	data, err := os.ReadFile(filepath.Join(base, "vid-1", "f.mp4"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestFSStore_DeleteRemovesBlob(t *testing.T) {
	store := NewFSStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "vid-1", "f.mp4", strings.NewReader("x")))
	require.NoError(t, store.Delete(ctx, "vid-1", "f.mp4"))

	ok, err := store.Exists(ctx, "vid-1", "f.mp4")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFSStore_DeleteAbsentIsNoop(t *testing.T) {
	store := NewFSStore(t.TempDir())

	err := store.Delete(context.Background(), "vid-1", "never-existed.mp4")
	assert.NoError(t, err)
}

func TestStoredName_KeepsLowercasedExtension(t *testing.T) {
	tests := []struct {
		filename string
		wantExt  string
	}{
		{"movie.mp4", ".mp4"},
		{"MOVIE.MP4", ".mp4"},
		{"thumb.JPEG", ".jpeg"},
		{"noext", ""},
		{"many.dots.png", ".png"},
	}

	for _, tt := range tests {
		name := StoredName(tt.filename)
		assert.True(t, strings.HasSuffix(name, tt.wantExt), "StoredName(%q) = %q, want suffix %q", tt.filename, name, tt.wantExt)
		assert.NotContains(t, strings.TrimSuffix(name, tt.wantExt), ".")
	}
}

func TestStoredName_Unique(t *testing.T) {
	a := StoredName("movie.mp4")
	b := StoredName("movie.mp4")
	assert.NotEqual(t, a, b)
}
