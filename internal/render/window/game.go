package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/zeusync/territory/internal/core/observability/log"
	"github.com/zeusync/territory/internal/render"
)

// Options configure the desktop window.
type Options struct {
	Title string
	TPS   int
	// Scale multiplies the canvas size to get the initial window size.
	Scale int
}

// Game adapts a render.Host to ebiten.Game. Each ebiten tick advances the
// simulation by 1/TPS seconds.
type Game struct {
	ctx     context.Context
	host    *render.Host
	surface *Surface
	dt      float64
	logger  log.Log
}

var _ ebiten.Game = (*Game)(nil)

func NewGame(ctx context.Context, host *render.Host, surface *Surface, tps int, logger log.Log) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &Game{
		ctx:     ctx,
		host:    host,
		surface: surface,
		dt:      1 / float64(tps),
		logger:  logger,
	}
}

// Update returns ebiten.Termination once ctx is done. Speed keys are applied
// before the step so the change shows up in the same tick.
func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		g.logger.Debug("window loop stopping", log.Error(err))
		return ebiten.Termination
	}
	g.handleSpeedKeys()
	g.host.Advance(g.dt)
	return nil
}

func (g *Game) handleSpeedKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.changeSpeed(-render.SpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.changeSpeed(render.SpeedStep)
	}
}

func (g *Game) changeSpeed(delta float64) {
	speed := g.host.AdjustSpeed(delta)
	g.logger.Info("speed changed", log.Float64("speed", speed))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.bind(screen)
	g.host.Draw()
	g.surface.bind(nil)
}

// Layout keeps the logical screen at the simulation size so the window scales
// the whole board.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.surface.Size()
	if w == 0 || h == 0 {
		w, h = render.CanvasSize(g.host.Simulation().Snapshot())
	}
	return w, h
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(ctx context.Context, host *render.Host, surface *Surface, opts Options, logger log.Log) error {
	w, h := render.CanvasSize(host.Simulation().Snapshot())
	scale := max(opts.Scale, 1)

	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)

	logger.Info("window opened",
		log.Int("width", w*scale),
		log.Int("height", h*scale),
		log.Int("tps", opts.TPS),
	)

	err := ebiten.RunGame(NewGame(ctx, host, surface, opts.TPS, logger))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
