package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)

	_, err = os.Stat(filepath.Join(dir, "huepick", "config.toml"))
	require.NoError(t, err)

	again, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, conf, again)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picker.toml")
	require.NoError(t, os.WriteFile(path, []byte("Title = \"Pick\"\nWidth = 40\nHeight = 12\n"), 0644))

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Pick", conf.Title)
	assert.Equal(t, 40, conf.Width)
	assert.Equal(t, 12, conf.Height)
	assert.Equal(t, 0.5, conf.Lightness)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picker.toml")
	require.NoError(t, os.WriteFile(path, []byte("Lightness = 1.5\n"), 0644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "lightness")

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	conf := Default()
	conf.History = "/tmp/colours.txt"
	conf.Lightness = 0.35
	require.NoError(t, Write(path, conf))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, conf, loaded)
}
