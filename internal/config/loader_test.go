package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoad(t *testing.T, opts ...LoaderOption) *Config {
	t.Helper()
	cfg, err := NewLoader(viper.New(), opts...).Load()
	require.NoError(t, err)
	return cfg
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_CreatesDefaultDocument(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := testLoad(t)

	assert.True(t, cfg.CreatedDefault)
	assert.Equal(t, filepath.Join(dir, "tardis", "config.toml"), cfg.ConfigFileUsed)
	assert.FileExists(t, cfg.ConfigFileUsed)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Empty(t, cfg.Timezone)
	assert.Equal(t, DefaultFormat, cfg.Formats["iso"])
	assert.Equal(t, "%d/%m/%Y", cfg.Formats["br"])
	assert.Contains(t, cfg.Formats, "us")
	assert.Contains(t, cfg.Formats, "time")
}

func TestLoad_SecondLoadKeepsDocument(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	first := testLoad(t)
	require.True(t, first.CreatedDefault)

	second := testLoad(t)
	assert.False(t, second.CreatedDefault)
	assert.Equal(t, first.ConfigFileUsed, second.ConfigFileUsed)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `
format = "stamp"
timezone = "Europe/Lisbon"

[formats]
stamp = "%s"
BR = "%d-%m-%Y"
br = "%d/%m/%Y"
`)

	cfg := testLoad(t, WithConfigFile(path))

	assert.Equal(t, "stamp", cfg.Format)
	assert.Equal(t, "Europe/Lisbon", cfg.Timezone)
	assert.Equal(t, "%d-%m-%Y", cfg.Formats["BR"])
	assert.Equal(t, "%d/%m/%Y", cfg.Formats["br"])
	assert.False(t, cfg.CreatedDefault)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	_, err := NewLoader(viper.New(), WithConfigFile(path)).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_EmptyFormatKept(t *testing.T) {
	path := writeConfig(t, `format = ""`)

	cfg := testLoad(t, WithConfigFile(path))

	assert.Empty(t, cfg.Format)
}

func TestLoad_EmptyPresetPatternDropped(t *testing.T) {
	path := writeConfig(t, `
[formats]
good = "%H:%M"
bad = ""
`)

	cfg := testLoad(t, WithConfigFile(path))

	assert.Equal(t, "%H:%M", cfg.Formats["good"])
	assert.NotContains(t, cfg.Formats, "bad")
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], `"bad"`)
}

func TestLoad_DebugFromEnvironment(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TARDIS_DEBUG", "true")

	cfg := testLoad(t)

	assert.True(t, cfg.Debug)
}

func TestLoad_InvalidDocument(t *testing.T) {
	path := writeConfig(t, "format = [broken")

	_, err := NewLoader(viper.New(), WithConfigFile(path)).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "tardis", "config.toml"), DefaultPath())
}
