package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "minipy >>> ", cfg.Prompt)
	assert.True(t, cfg.ColorsOn)
	assert.True(t, cfg.ShowBanner)
}

func TestLoadOverridesFromCwdFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("prompt: \"mp> \"\ncolors: false\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mp> ", cfg.Prompt)
	assert.False(t, cfg.ColorsOn)
	assert.True(t, cfg.ShowBanner)
}

func TestLoadWithNoFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
