package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/territory/internal/core/sim"
	"github.com/zeusync/territory/internal/render"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	sc, err := c.Simulation()
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultConfig(), sc)
	assert.Equal(t, render.DefaultTheme(), c.Theme())
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	src := `
board:
  width: 10
  height: 6
player:
  speed: 120
capture:
  mode: exact
colors:
  agent_a:
    cell: "#00ff00"
render:
  backend: headless
headless:
  frames: 30
  snapshot_every: 0
log:
  level: debug
`
	c, err := LoadYAML(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 10, c.Board.Width)
	assert.Equal(t, 6, c.Board.Height)
	assert.Equal(t, 20.0, c.Board.CellSize, "unset keys keep defaults")
	assert.Equal(t, 120.0, c.Player.Speed)
	assert.Equal(t, 0.5, c.Player.RadiusFactor)
	assert.Equal(t, sim.RGBA8(0, 255, 0, 255), c.Colors.AgentA.Cell)
	assert.Equal(t, sim.DefaultPalette().Bodies[sim.AgentA], c.Colors.AgentA.Body)
	assert.Equal(t, BackendHeadless, c.Render.Backend)
	assert.Equal(t, 30, c.Headless.Frames)
	assert.Equal(t, 0, c.Headless.SnapshotEvery)
	assert.Equal(t, "debug", c.Log.Level)

	sc, err := c.Simulation()
	require.NoError(t, err)
	assert.Equal(t, sim.CaptureExact, sc.CaptureMode)
	assert.Equal(t, sim.RGBA8(0, 255, 0, 255), sc.Palette.Cells[sim.AgentA])
}

func TestLoadYAMLEmptyDocument(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), *c)
}

func TestLoadYAMLRejectsUnknownKeys(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("board:\n  depth: 3\n"))
	require.Error(t, err)
}

func TestLoadYAMLBadColor(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("colors:\n  grid: \"#12\"\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Board.Width = 0 }},
		{"negative height", func(c *Config) { c.Board.Height = -1 }},
		{"zero cell size", func(c *Config) { c.Board.CellSize = 0 }},
		{"radius factor zero", func(c *Config) { c.Player.RadiusFactor = 0 }},
		{"agent wider than board", func(c *Config) { c.Board.Height = 1 }},
		{"unknown capture mode", func(c *Config) { c.Capture.Mode = "circle" }},
		{"unknown backend", func(c *Config) { c.Render.Backend = "opengl" }},
		{"zero tps", func(c *Config) { c.Render.TPS = 0 }},
		{"zero scale", func(c *Config) { c.Render.Scale = 0 }},
		{"headless without frames", func(c *Config) {
			c.Render.Backend = BackendHeadless
			c.Headless.Frames = 0
		}},
		{"headless zero dt", func(c *Config) {
			c.Render.Backend = BackendHeadless
			c.Headless.DT = 0
		}},
		{"headless empty output dir", func(c *Config) {
			c.Render.Backend = BackendHeadless
			c.Headless.OutputDir = ""
		}},
		{"headless blank output dir", func(c *Config) {
			c.Render.Backend = BackendHeadless
			c.Headless.OutputDir = "  "
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNegativeSpeedIsAllowed(t *testing.T) {
	c := Default()
	c.Player.Speed = -250
	assert.NoError(t, c.Validate())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "territory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  speed: 42\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42.0, c.Player.Speed)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 0\n"), 0o600))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
