package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr)
	assert.Equal(t, "data/site.db", cfg.Database.Path)
	assert.Equal(t, "", cfg.Storage.Bucket)
	assert.Equal(t, 15, cfg.Storage.PresignTTLMinutes)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SITE_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("SITE_STORAGE_BUCKET", "covers-bucket")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "covers-bucket", cfg.Storage.Bucket)
}
