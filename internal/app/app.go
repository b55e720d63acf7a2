package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/zeusync/territory/internal/config"
	"github.com/zeusync/territory/internal/core/events/bus"
	"github.com/zeusync/territory/internal/core/observability/log"
	"github.com/zeusync/territory/internal/core/sim"
	"github.com/zeusync/territory/internal/render"
	"github.com/zeusync/territory/internal/render/raster"
	"github.com/zeusync/territory/internal/render/terminal"
	"github.com/zeusync/territory/internal/render/window"
)

// RunID identifies one process run in logs and as the event source.
type RunID string

// App is one configured run: a simulation plus the backend that hosts it.
type App struct {
	cfg      *config.Config
	runID    RunID
	logger   log.Log
	bus      bus.EventBus
	sim      *sim.Simulation
	renderer *render.Renderer

	tally    *tally
	observer *deliveryObserver
	subs     []bus.Subscription
}

func New(cfg *config.Config, runID RunID, logger log.Log, b bus.EventBus, s *sim.Simulation, r *render.Renderer) *App {
	return &App{
		cfg:      cfg,
		runID:    runID,
		logger:   logger,
		bus:      b,
		sim:      s,
		renderer: r,
	}
}

func (a *App) Simulation() *sim.Simulation { return a.sim }
func (a *App) RunID() RunID                { return a.runID }

// Run hosts the simulation on the configured backend until the backend
// finishes or ctx is cancelled, then logs a summary.
func (a *App) Run(ctx context.Context) error {
	if err := a.watch(); err != nil {
		return err
	}
	defer a.unwatch()

	screenW, screenH := a.sim.ScreenSize()
	a.logger.Info("run starting",
		log.String("backend", a.cfg.Render.Backend),
		log.String("capture_mode", a.sim.CaptureMode().String()),
		log.Int("board_width", a.cfg.Board.Width),
		log.Int("board_height", a.cfg.Board.Height),
		log.Float64("screen_width", screenW),
		log.Float64("screen_height", screenH),
		log.Float64("speed", a.cfg.Player.Speed),
		log.Bool("show_grid", a.cfg.Render.ShowGrid),
		log.Bool("overlay", a.cfg.Render.Overlay),
	)

	err := a.run(ctx)
	a.report()
	return err
}

func (a *App) run(ctx context.Context) error {
	switch backend := a.cfg.Render.Backend; backend {
	case config.BackendWindow:
		surface := window.NewSurface()
		host := render.NewHost(a.sim, surface, a.renderer)
		return window.Run(ctx, host, surface, window.Options{
			Title: a.cfg.Render.Title,
			TPS:   a.cfg.Render.TPS,
			Scale: a.cfg.Render.Scale,
		}, a.logger)

	case config.BackendTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		surface := terminal.NewSurface(screen)
		host := render.NewHost(a.sim, surface, a.renderer)
		return terminal.Run(ctx, screen, host, surface, a.cfg.Render.TPS, a.logger)

	case config.BackendHeadless:
		surface, err := raster.New(a.cfg.Headless.FontSize)
		if err != nil {
			return err
		}
		defer surface.Close()

		host := render.NewHost(a.sim, surface, a.renderer)
		res, err := raster.Run(ctx, host, surface, raster.Options{
			Frames:        a.cfg.Headless.Frames,
			DT:            a.cfg.Headless.DT,
			SnapshotEvery: a.cfg.Headless.SnapshotEvery,
			OutputDir:     a.cfg.Headless.OutputDir,
		}, a.logger)
		a.logger.Info("headless run done",
			log.Int("frames", res.Frames),
			log.Int("snapshots", len(res.Snapshots)),
			log.String("output_dir", a.cfg.Headless.OutputDir),
		)
		return err

	default:
		return fmt.Errorf("%w: %q", render.ErrUnknownBackend, backend)
	}
}

func (a *App) watch() error {
	a.tally = newTally(a.sim.Snapshot(), a.logger)
	sub, err := a.bus.Subscribe(sim.EventCellCaptured, a.tally.handle)
	if err != nil {
		return fmt.Errorf("subscribe captures: %w", err)
	}
	a.subs = append(a.subs, sub)

	a.observer = &deliveryObserver{logger: a.logger}
	a.bus.AddObserver(a.observer)
	return nil
}

func (a *App) unwatch() {
	for _, sub := range a.subs {
		_ = a.bus.Unsubscribe(sub)
	}
	a.subs = nil
	a.bus.RemoveObserver(a.observer)
}

func (a *App) report() {
	stats := a.sim.Stats()
	snap := a.sim.Snapshot()
	metrics := a.bus.GetMetrics()
	counts := [sim.AgentCount]int{snap.Count(sim.AgentA), snap.Count(sim.AgentB)}

	a.logger.Info("run finished",
		log.Uint64("frames", stats.Frames),
		log.Int("cells_a", counts[sim.AgentA]),
		log.Int("cells_b", counts[sim.AgentB]),
		log.Uint64("captures_a", stats.Captures[sim.AgentA]),
		log.Uint64("captures_b", stats.Captures[sim.AgentB]),
		log.Uint64("bounces_a", stats.Bounces[sim.AgentA]),
		log.Uint64("bounces_b", stats.Bounces[sim.AgentB]),
		log.Uint64("events_published", metrics.Published),
		log.Uint64("event_errors", metrics.Errors),
		log.String("fingerprint", strconv.FormatUint(a.sim.Fingerprint(), 16)),
	)

	if tallied := a.tally.snapshot(); tallied != counts {
		a.logger.Error("capture events disagree with board",
			log.Int("tally_a", tallied[sim.AgentA]),
			log.Int("tally_b", tallied[sim.AgentB]),
		)
	}
}
