package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/romangod6/sitemap-generator/internal/encoder"
	"github.com/romangod6/sitemap-generator/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty directory so no sitemapgen.yaml is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	mode, err := cfg.EncodingMode()
	require.NoError(t, err)
	assert.Equal(t, encoder.ModeBytes, mode)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, utils.LevelInfo, level)

	assert.Empty(t, cfg.Log.File)
	assert.False(t, cfg.Output.LegacyExitCode)
}

func TestLoadConfig_FileEnvAndFlags(t *testing.T) {
	dir := chdir(t)
	yaml := "encoding:\n  mode: structural\nlog:\n  level: debug\n  file: gen.log\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sitemapgen.yaml"), []byte(yaml), 0600))

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "structural", cfg.Encoding.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "gen.log", cfg.Log.File)

	t.Setenv("SITEMAPGEN_LOG_LEVEL", "error")
	t.Setenv("SITEMAPGEN_OUTPUT_LEGACY_EXIT_CODE", "true")
	cfg, err = LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Output.LegacyExitCode)

	fs := NewFlagSet("test")
	require.NoError(t, fs.Parse([]string{"--encoding", "bytes", "--log-level", "info"}))
	cfg, err = LoadConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "bytes", cfg.Encoding.Mode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "gen.log", cfg.Log.File)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  legacy_exit_code: true\n"), 0600))

	fs := NewFlagSet("test")
	require.NoError(t, fs.Parse([]string{"--config", path}))
	cfg, err := LoadConfig(fs)
	require.NoError(t, err)
	assert.True(t, cfg.Output.LegacyExitCode)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	dir := chdir(t)

	fs := NewFlagSet("test")
	require.NoError(t, fs.Parse([]string{"--config", filepath.Join(dir, "nope.yaml")}))
	_, err := LoadConfig(fs)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	chdir(t)

	fs := NewFlagSet("test")
	require.NoError(t, fs.Parse([]string{"--encoding", "rot13"}))
	_, err := LoadConfig(fs)
	assert.ErrorContains(t, err, "unknown encoding mode")

	fs = NewFlagSet("test")
	require.NoError(t, fs.Parse([]string{"--log-level", "loud"}))
	_, err = LoadConfig(fs)
	assert.ErrorContains(t, err, "unknown log level")
}

func TestLoadConfig_IgnoresBinaryNamedLikeConfig(t *testing.T) {
	dir := chdir(t)
	binary := []byte("\x7fELF\x02\x01\x01\x00\x00\x00\x00\x00")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sitemapgen"), binary, 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "sitemapgen"), binary, 0755))

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "bytes", cfg.Encoding.Mode)
}

func TestLoadConfig_YmlInConfigDir(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "sitemapgen.yml"), []byte("encoding:\n  mode: structural\n"), 0600))

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "structural", cfg.Encoding.Mode)
}
