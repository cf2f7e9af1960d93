package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "", cfg.Catalog.Path)
	assert.Equal(t, "empty", cfg.Render.DefaultKey)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SHIFTSVG_HTTP_PORT", "9090")
	t.Setenv("SHIFTSVG_LOG_LEVEL", "debug")
	t.Setenv("SHIFTSVG_CATALOG_PATH", "/etc/shift/catalog.yaml")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/etc/shift/catalog.yaml", cfg.Catalog.Path)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shiftsvg.yaml")
	content := "http:\n  port: 7070\nrender:\n  default_key: night\nlog:\n  json: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, "night", cfg.Render.DefaultKey)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("SHIFTSVG_HTTP_PORT", "70000")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http.port")
}
