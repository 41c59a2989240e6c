package photos

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sir_venger/inventory_lite/internal/config"
)

func TestNew_SelectsBackend(t *testing.T) {
	ctx := context.Background()

	cfg := config.Default()
	cfg.CacheDir = t.TempDir()

	s, err := New(ctx, cfg)
	require.NoError(t, err)
	require.IsType(t, &DirStore{}, s)
	info, err := os.Stat(cfg.PhotosDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	cfg.Photos.Backend = "memory"
	s, err = New(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	cfg.Photos.Backend = "s3"
	_, err = New(ctx, cfg)
	assert.Error(t, err, "s3 without bucket must fail")

	cfg.Photos.Backend = "ftp"
	_, err = New(ctx, cfg)
	assert.Error(t, err)
}
