package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/territory/internal/config"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	def := config.Default()
	assert.Equal(t, &def, cfg)
}

func TestParseFlagsOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "territory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  speed: 80\nrender:\n  tps: 30\n"), 0o600))

	cfg, err := parseFlags([]string{
		"-config", path,
		"-backend", "headless",
		"-speed", "0",
		"-capture", "exact",
		"-frames", "12",
		"-out", dir,
	})
	require.NoError(t, err)

	assert.Equal(t, config.BackendHeadless, cfg.Render.Backend)
	assert.Equal(t, 30, cfg.Render.TPS, "file values survive")
	assert.Equal(t, 0.0, cfg.Player.Speed, "explicit zero overrides the file")
	assert.Equal(t, "exact", cfg.Capture.Mode)
	assert.Equal(t, 12, cfg.Headless.Frames)
	assert.Equal(t, dir, cfg.Headless.OutputDir)
}

func TestParseFlagsInvalid(t *testing.T) {
	_, err := parseFlags([]string{"-backend", "opengl"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = parseFlags([]string{"-backend", "headless", "-out", ""})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = parseFlags([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	_, err = parseFlags([]string{"-nope"})
	assert.Error(t, err)
}
