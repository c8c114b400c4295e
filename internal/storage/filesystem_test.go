package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(Config{BasePath: t.TempDir()}, nil)
	require.NoError(t, err)
	return store
}

func TestNewFileStore_MissingBasePath(t *testing.T) {
	_, err := NewFileStore(Config{}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestFileStore_WriteAndExists(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	location, err := store.Write(ctx, "doc-1.pdf", strings.NewReader("%PDF-1.4 content"))
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(location))
	assert.Equal(t, filepath.Join(store.BasePath(), "doc-1.pdf"), location)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 content", string(data))

	exists, err := store.Exists(ctx, location)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFileStore_WriteCreatesBaseDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "uploads")
	store, err := NewFileStore(Config{BasePath: base}, nil)
	require.NoError(t, err)

	_, err = store.Write(context.Background(), "doc.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStore_WriteLeavesNoPartialFileOnFailure(t *testing.T) {
	store := newTestFileStore(t)

	_, err := store.Write(context.Background(), "doc.pdf", failingReader{})
	require.Error(t, err)

	entries, err := os.ReadDir(store.BasePath())
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, "doc.pdf", e.Name(), "final name must not be discoverable after a failed write")
	}
}

func TestFileStore_Delete(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	location, err := store.Write(ctx, "doc.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, location))

	exists, err := store.Exists(ctx, location)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again is not an error.
	assert.NoError(t, store.Delete(ctx, location))
}

func TestFileStore_PermissionErrorKind(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	base := t.TempDir()
	require.NoError(t, os.Chmod(base, 0o555))
	t.Cleanup(func() { _ = os.Chmod(base, 0o755) })

	store, err := NewFileStore(Config{BasePath: base}, nil)
	require.NoError(t, err)

	_, err = store.Write(context.Background(), "doc.pdf", strings.NewReader("x"))
	require.Error(t, err)
	assert.True(t, IsPermission(err), "expected permission kind, got %v", err)
}

func TestFileStore_ConcurrentWritesDoNotCollide(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		i := i
		g.Go(func() error {
			name := fmt.Sprintf("doc-%d.pdf", i)
			location, err := store.Write(ctx, name, bytes.NewReader([]byte(name)))
			if err != nil {
				return err
			}
			data, err := os.ReadFile(location)
			if err != nil {
				return err
			}
			if string(data) != name {
				return fmt.Errorf("content mismatch for %s: %q", name, data)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	entries, err := os.ReadDir(store.BasePath())
	require.NoError(t, err)
	assert.Len(t, entries, 16)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("simulated read failure")
}
