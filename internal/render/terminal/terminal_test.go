package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/territory/internal/core/observability/log"
	"github.com/zeusync/territory/internal/core/sim"
	"github.com/zeusync/territory/internal/render"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	return screen
}

func TestSurfaceScalesBoardToTerminal(t *testing.T) {
	screen := newScreen(t, 80, 24)
	defer screen.Fini()

	surface := NewSurface(screen)
	host := render.NewHost(sim.New(sim.DefaultConfig()), surface, render.NewRenderer(render.DefaultTheme()))
	host.Draw()

	// 800x400 canvas on 80x24: two columns and one row per board cell.
	assert.InDelta(t, 10.0, surface.unitX, 1e-9)
	assert.InDelta(t, 20.0, surface.unitY, 1e-9)

	palette := sim.DefaultPalette()
	red := toTcell(palette.Cells[sim.AgentA])
	blue := toTcell(palette.Cells[sim.AgentB])

	c, ok := surface.Cell(0, 19)
	require.True(t, ok)
	assert.Equal(t, red, c)
	c, _ = surface.Cell(79, 19)
	assert.Equal(t, blue, c)
	c, _ = surface.Cell(39, 19)
	assert.Equal(t, red, c)
	c, _ = surface.Cell(40, 19)
	assert.Equal(t, blue, c)

	// Rows past the board keep the background.
	c, _ = surface.Cell(0, 22)
	assert.Equal(t, toTcell(render.DefaultTheme().Background), c)

	// Agent A sits at (200, 200): column 20, row 10.
	c, _ = surface.Cell(20, 10)
	assert.Equal(t, toTcell(palette.Bodies[sim.AgentA]), c)

	_, ok = surface.Cell(80, 0)
	assert.False(t, ok)
}

func TestSurfaceDrawsOverlayText(t *testing.T) {
	screen := newScreen(t, 80, 24)
	defer screen.Fini()

	surface := NewSurface(screen)
	host := render.NewHost(sim.New(sim.DefaultConfig()), surface, render.NewRenderer(render.DefaultTheme()))
	host.Draw()
	screen.Show()

	cells, width, _ := screen.GetContents()
	want := render.OverlayText(sim.New(sim.DefaultConfig()).Snapshot())
	var got []rune
	for i := range []rune(want) {
		got = append(got, cells[i].Runes...)
	}
	assert.Equal(t, want, string(got))
	assert.Equal(t, 80, width)
}

func TestSpan(t *testing.T) {
	s := &Surface{}
	first, last := s.span(0, 20, 10, 80)
	assert.Equal(t, 0, first)
	assert.Equal(t, 2, last)

	first, last = s.span(20, 40, 10, 80)
	assert.Equal(t, 2, first)
	assert.Equal(t, 4, last)

	first, last = s.span(-30, 5, 10, 3)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, last)
}

func TestSurfaceBeforeSizingIsNoop(t *testing.T) {
	screen := newScreen(t, 10, 5)
	defer screen.Fini()
	s := NewSurface(screen)
	assert.NotPanics(t, func() {
		s.FillRect(0, 0, 10, 10, sim.RGBA8(1, 2, 3, 255))
		s.FillCircle(0, 0, 4, sim.RGBA8(1, 2, 3, 255))
		s.DrawText("x", 0, 0, sim.RGBA8(1, 2, 3, 255))
	})
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	s := sim.New(sim.DefaultConfig())
	surface := NewSurface(screen)
	host := render.NewHost(s, surface, render.NewRenderer(render.DefaultTheme()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(context.Background(), screen, host, surface, 200, log.NewNop())
	}()

	require.Eventually(t, func() bool { return s.Stats().Frames > 2 }, 5*time.Second, 5*time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("terminal loop did not stop on quit key")
	}
}

func TestRunSpeedKeys(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	s := sim.New(sim.DefaultConfig())
	surface := NewSurface(screen)
	host := render.NewHost(s, surface, render.NewRenderer(render.DefaultTheme()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(context.Background(), screen, host, surface, 200, log.NewNop())
	}()

	require.Eventually(t, func() bool { return s.Stats().Frames > 0 }, 5*time.Second, 5*time.Millisecond)

	screen.InjectKey(tcell.KeyRune, '+', tcell.ModNone)
	require.Eventually(t, func() bool { return s.Agent(sim.AgentA).Speed == 550 }, 5*time.Second, 5*time.Millisecond)
	assert.Equal(t, 550.0, s.Agent(sim.AgentB).Speed)

	// The new speed is used by the following ticks.
	frames := s.Stats().Frames
	require.Eventually(t, func() bool { return s.Stats().Frames > frames+1 }, 5*time.Second, 5*time.Millisecond)

	screen.InjectKey(tcell.KeyRune, '-', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, '-', tcell.ModNone)
	require.Eventually(t, func() bool { return s.Agent(sim.AgentA).Speed == 450 }, 5*time.Second, 5*time.Millisecond)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("terminal loop did not stop")
	}
}

func TestSpeedKey(t *testing.T) {
	assert.Equal(t, float64(render.SpeedStep), speedKey(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone)))
	assert.Equal(t, float64(render.SpeedStep), speedKey(tcell.NewEventKey(tcell.KeyRune, '=', tcell.ModNone)))
	assert.Equal(t, -float64(render.SpeedStep), speedKey(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone)))
	assert.Zero(t, speedKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.Zero(t, speedKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	surface := NewSurface(screen)
	host := render.NewHost(sim.New(sim.DefaultConfig()), surface, render.NewRenderer(render.DefaultTheme()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, Run(ctx, screen, host, surface, 60, log.NewNop()))
}

func TestRunRejectsZeroTPS(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	err := Run(context.Background(), screen, nil, nil, 0, log.NewNop())
	assert.Error(t, err)
}
