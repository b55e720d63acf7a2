package injector

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/territory/internal/config"
	"github.com/zeusync/territory/internal/core/sim"
)

func TestInitializeApp(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Render.Backend = config.BackendHeadless
	cfg.Capture.Mode = "exact"
	cfg.Headless.Frames = 10
	cfg.Headless.OutputDir = filepath.Join(dir, "frames")
	cfg.Log.OutputPaths = []string{filepath.Join(dir, "run.log")}

	a, err := InitializeApp(&cfg)
	require.NoError(t, err)
	require.NotNil(t, a)

	assert.NotEmpty(t, a.RunID())
	assert.Equal(t, sim.CaptureExact, a.Simulation().CaptureMode())

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, uint64(10), a.Simulation().Stats().Frames)
	assert.FileExists(t, filepath.Join(cfg.Headless.OutputDir, "frame-000010.png"))
	assert.FileExists(t, filepath.Join(dir, "run.log"))
}

func TestInitializeAppRejectsBadCaptureMode(t *testing.T) {
	cfg := config.Default()
	cfg.Capture.Mode = "circle"

	_, err := InitializeApp(&cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
