package photos

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sir_venger/inventory_lite/internal/models"
)

func TestDirStore_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "photos")
	s, err := NewDirStore(dir)
	require.NoError(t, err)

	payload := []byte{0xff, 0xd8, 0xff, 0xe0, 1, 2, 3}
	require.NoError(t, s.Put(ctx, "a.jpg", bytes.NewReader(payload)))

	_, err = os.Stat(filepath.Join(dir, "a.jpg"))
	require.NoError(t, err)

	rc, err := s.Open(ctx, "a.jpg")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	require.NoError(t, s.Delete(ctx, "a.jpg"))
	_, err = s.Open(ctx, "a.jpg")
	assert.ErrorIs(t, err, models.ErrNotFound)

	// повторное удаление не ошибка
	assert.NoError(t, s.Delete(ctx, "a.jpg"))
}

func TestDirStore_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s, err := NewDirStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, s.Put(ctx, "../evil.jpg", bytes.NewReader(nil)))
	_, err = s.Open(ctx, "../evil.jpg")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, s.Delete(ctx, ""))
}

func TestDirStore_List(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewDirStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "one.jpg", bytes.NewReader([]byte("1"))))
	require.NoError(t, s.Put(ctx, "two.png", bytes.NewReader([]byte("2"))))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	entries, err := s.List(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
		assert.False(t, e.ModTime.IsZero())
	}
	assert.ElementsMatch(t, []string{"one.jpg", "two.png"}, names)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, "x.jpg", bytes.NewReader([]byte("data"))))
	assert.True(t, s.Has("x.jpg"))

	rc, err := s.Open(ctx, "x.jpg")
	require.NoError(t, err)
	got, _ := io.ReadAll(rc)
	assert.Equal(t, "data", string(got))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, s.Delete(ctx, "x.jpg"))
	require.NoError(t, s.Delete(ctx, "x.jpg"))
	assert.False(t, s.Has("x.jpg"))
	_, err = s.Open(ctx, "x.jpg")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
