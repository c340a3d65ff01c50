package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.Defaults.Algo)
	assert.Nil(t, cfg.Defaults.Keep)
	assert.Nil(t, cfg.Defaults.MinSize)
}

func TestLoadReadsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "dedup")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[defaults]
algo = "blake3"
keep = "newest"
min-size = "10KB"
`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	require.NotNil(t, cfg.Defaults.Algo)
	assert.Equal(t, "blake3", *cfg.Defaults.Algo)
	require.NotNil(t, cfg.Defaults.Keep)
	assert.Equal(t, "newest", *cfg.Defaults.Keep)
	require.NotNil(t, cfg.Defaults.MinSize)
	assert.Equal(t, "10KB", *cfg.Defaults.MinSize)
}

func TestLoadPartialDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "dedup")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[defaults]
keep = "newest"
`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Nil(t, cfg.Defaults.Algo)
	require.NotNil(t, cfg.Defaults.Keep)
	assert.Equal(t, "newest", *cfg.Defaults.Keep)
}

func TestPathUsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	assert.Equal(t, filepath.Join("/custom/config", "dedup", "config.toml"), Path())
}
