package render

import (
	"math"

	"github.com/zeusync/territory/internal/core/sim"
)

// Host couples a simulation to one surface. Backends drive it from their own
// loop; a Host is not safe for concurrent Tick calls.
type Host struct {
	sim      *sim.Simulation
	surface  Surface
	renderer *Renderer
	sized    bool
}

func NewHost(s *sim.Simulation, surface Surface, renderer *Renderer) *Host {
	return &Host{sim: s, surface: surface, renderer: renderer}
}

// Tick advances the simulation by dt seconds and draws the result.
func (h *Host) Tick(dt float64) {
	h.Advance(dt)
	h.Draw()
}

// Advance steps the simulation without drawing. Backends whose update and
// draw callbacks are separate (ebiten) call Advance and Draw independently.
func (h *Host) Advance(dt float64) {
	h.sim.Update(dt)
}

// Draw renders the current state, negotiating the canvas size on first use.
func (h *Host) Draw() {
	snap := h.sim.Snapshot()
	if !h.sized {
		w, ht := CanvasSize(snap)
		h.surface.SetCanvasSize(w, ht)
		h.sized = true
	}
	h.renderer.Draw(h.surface, snap)
}

// SpeedStep is the speed change applied by one speed-up or slow-down key.
const SpeedStep = 50

// AdjustSpeed shifts the speed of both agents by delta, never below zero, and
// returns the new speed. It takes effect on the next Advance.
func (h *Host) AdjustSpeed(delta float64) float64 {
	speed := max(h.sim.Agent(sim.AgentA).Speed+delta, 0)
	h.sim.SetPlayerSpeed(speed)
	return speed
}

func (h *Host) Simulation() *sim.Simulation { return h.sim }

// CanvasSize rounds the screen rectangle up to whole units.
func CanvasSize(snap sim.Snapshot) (width, height int) {
	return int(math.Ceil(snap.ScreenWidth)), int(math.Ceil(snap.ScreenHeight))
}
