package integration

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sir_venger/inventory_lite/internal/app/resthttp"
	"github.com/sir_venger/inventory_lite/internal/config"
	"github.com/sir_venger/inventory_lite/internal/logging"
	"github.com/sir_venger/inventory_lite/pkg/inventoryclient"
)

// startServer поднимает сервис поверх каталога кэша.
func startServer(t *testing.T, cacheDir string) inventoryclient.Client {
	t.Helper()
	cfg := config.Default()
	cfg.CacheDir = cacheDir

	h, _, err := resthttp.NewServer(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return inventoryclient.New(srv.URL)
}

func photoFiles(t *testing.T, cacheDir string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(cacheDir, "photos"))
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestInventoryLifecycle(t *testing.T) {
	ctx := context.Background()
	cache := t.TempDir()
	cli := startServer(t, cache)

	payload := bytes.Repeat([]byte{0xA1, 0xB2, 0xC3, 0xD4}, 1<<14)

	item, err := cli.Register(ctx, "Camera", "35mm", &inventoryclient.Photo{FileName: "cam.jpg", Data: payload})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	require.NotNil(t, item.Photo)

	got, ct, err := cli.Photo(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)
	assert.True(t, bytes.Equal(payload, got), "photo bytes differ")

	oldFiles := photoFiles(t, cache)
	require.Len(t, oldFiles, 1)

	_, err = cli.UpdatePhoto(ctx, item.ID, inventoryclient.Photo{FileName: "cam2.jpg", Data: []byte("second")})
	require.NoError(t, err)
	newFiles := photoFiles(t, cache)
	require.Len(t, newFiles, 1)
	assert.NotEqual(t, oldFiles[0], newFiles[0])

	got, _, err = cli.Photo(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	updated, err := cli.Update(ctx, item.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Camera", updated.Name)
	assert.Equal(t, "35mm", updated.Description)

	require.NoError(t, cli.Delete(ctx, item.ID))
	assert.Empty(t, photoFiles(t, cache))

	list, err := cli.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = cli.Get(ctx, item.ID)
	assert.Equal(t, http.StatusNotFound, inventoryclient.StatusCode(err))
}

func TestRegister_FreshIDs(t *testing.T) {
	ctx := context.Background()
	cli := startServer(t, t.TempDir())

	seen := map[string]struct{}{}
	for i := 0; i < 10; i++ {
		it, err := cli.Register(ctx, "thing", "", nil)
		require.NoError(t, err)
		_, dup := seen[it.ID]
		require.False(t, dup)
		seen[it.ID] = struct{}{}
	}

	_, err := cli.Register(ctx, "", "no name", nil)
	assert.Equal(t, http.StatusBadRequest, inventoryclient.StatusCode(err))

	list, err := cli.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 10)
}

func TestSearch_PostAndGetEquivalent(t *testing.T) {
	ctx := context.Background()
	cli := startServer(t, t.TempDir())

	it, err := cli.Register(ctx, "Vase", "red", &inventoryclient.Photo{FileName: "v.png", Data: []byte("v")})
	require.NoError(t, err)

	for _, withPhoto := range []bool{false, true} {
		post, err := cli.SearchPost(ctx, it.ID, withPhoto)
		require.NoError(t, err)
		get, err := cli.SearchGet(ctx, it.ID, withPhoto)
		require.NoError(t, err)
		assert.Equal(t, post, get)
	}

	_, err = cli.SearchGet(ctx, "missing", false)
	assert.Equal(t, http.StatusNotFound, inventoryclient.StatusCode(err))
}

func TestRestart_ReproducesCollection(t *testing.T) {
	ctx := context.Background()
	cache := t.TempDir()

	first := startServer(t, cache)
	a, err := first.Register(ctx, "A", "alpha", nil)
	require.NoError(t, err)
	b, err := first.Register(ctx, "B", "beta", &inventoryclient.Photo{FileName: "b.jpg", Data: []byte("bee")})
	require.NoError(t, err)
	_, err = first.Update(ctx, a.ID, "A2", "")
	require.NoError(t, err)

	before, err := first.List(ctx)
	require.NoError(t, err)

	second := startServer(t, cache)
	after, err := second.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	got, _, err := second.Photo(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "bee", string(got))
}

func TestStartup_MalformedDocument(t *testing.T) {
	ctx := context.Background()
	cache := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cache, "inventory.json"), []byte("]]garbage"), 0o644))

	cli := startServer(t, cache)
	list, err := cli.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = cli.Register(ctx, "fresh", "", nil)
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(cache, "inventory.json"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"fresh"`)
}
