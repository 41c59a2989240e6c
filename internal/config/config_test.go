package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), c)
	assert.Equal(t, filepath.Join("cache", "inventory.json"), c.DocumentPath())
	assert.Equal(t, filepath.Join("cache", "photos"), c.PhotosDir())
	assert.Equal(t, int64(32<<20), c.MaxUploadBytes())
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := `
listen_addr: ":9000"
cache_dir: /var/cache/inventory
max_upload_mb: 4
gc_interval: 10m
photos:
  backend: s3
  s3:
    bucket: photos
    region: eu-central-1
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LISTEN_ADDR", ":9100")
	t.Setenv("S3_ENDPOINT", "http://minio:9000")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9100", c.ListenAddr)
	assert.Equal(t, "/var/cache/inventory", c.CacheDir)
	assert.Equal(t, int64(4<<20), c.MaxUploadBytes())
	assert.Equal(t, 10*time.Minute, c.GCInterval)
	assert.Equal(t, "s3", c.Photos.Backend)
	assert.Equal(t, "photos", c.Photos.S3.Bucket)
	assert.Equal(t, "eu-central-1", c.Photos.S3.Region)
	assert.Equal(t, "http://minio:9000", c.Photos.S3.Endpoint)
	// не заданное в файле остаётся по умолчанию
	assert.Equal(t, "inventory.json", c.DocumentName)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: [unclosed"), 0o644))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestPhotosDir_Explicit(t *testing.T) {
	c := Default()
	c.Photos.Dir = "/srv/photos"
	assert.Equal(t, "/srv/photos", c.PhotosDir())
}
