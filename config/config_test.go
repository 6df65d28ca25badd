package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFileOrOverrides(t *testing.T) {
	cfg, err := Load("", Config{})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"**/*.csv", "**/*.txt"}, cfg.Include)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Config{})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMalformedFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))
	_, err := Load(path, Config{})
	assert.Error(t, err)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\ncorpusRoot: /data/corpus\n"), 0o644))

	cfg, err := Load(path, Config{})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/data/corpus", cfg.CorpusRoot)
	assert.Equal(t, "text", cfg.OutputFormat)
}

func TestLoadOverridesWinOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\n"), 0o644))

	cfg, err := Load(path, Config{LogLevel: "error"})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestXDGConfigPathUsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdgconf")
	assert.Equal(t, "/tmp/xdgconf/wordrules/config.yaml", XDGConfigPath())
}

func TestXDGConfigPathFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/.config/wordrules/config.yaml", XDGConfigPath())
}
