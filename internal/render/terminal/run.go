package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/zeusync/territory/internal/core/observability/log"
	"github.com/zeusync/territory/internal/render"
)

// maxStep caps the dt of a single tick after a stall (suspend, slow terminal).
const maxStep = 0.1

// Run owns screen for the duration of the loop: it initializes it, ticks host
// TPS times per second with the measured frame time, and finalizes it on
// return. Escape, Ctrl+C and 'q' end the loop, as does cancelling ctx; '+'
// and '-' change the agent speed by render.SpeedStep.
func Run(ctx context.Context, screen tcell.Screen, host *render.Host, surface *Surface, tps int, logger log.Log) error {
	if tps <= 0 {
		return fmt.Errorf("terminal: tps must be positive, got %d", tps)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	cols, rows := screen.Size()
	logger.Info("terminal opened", log.Int("cols", cols), log.Int("rows", rows), log.Int("tps", tps))

	host.Draw()
	screen.Show()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					logger.Debug("quit key pressed")
					return nil
				}
				if delta := speedKey(ev); delta != 0 {
					speed := host.AdjustSpeed(delta)
					logger.Info("speed changed", log.Float64("speed", speed))
				}
			case *tcell.EventResize:
				surface.Resize()
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxStep)
			last = now
			host.Tick(dt)
			screen.Show()
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func speedKey(ev *tcell.EventKey) float64 {
	if ev.Key() != tcell.KeyRune {
		return 0
	}
	switch ev.Rune() {
	case '+', '=':
		return render.SpeedStep
	case '-', '_':
		return -render.SpeedStep
	}
	return 0
}
