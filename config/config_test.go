package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "jwt:\n  secret: file-secret\n"))
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, "json/products.json", cfg.Catalog.Path)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_ADDR", ":8080")
	t.Setenv("STOREFRONT_STORE_DRIVER", "redis")
	t.Setenv("STOREFRONT_JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(writeConfig(t, "jwt:\n  secret: file-secret\nstore:\n  driver: memory\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
