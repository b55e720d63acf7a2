package sim

import (
	"math"

	"github.com/zeusync/territory/internal/core/board"
	"github.com/zeusync/territory/internal/core/observability/log"
	"github.com/zeusync/territory/internal/core/systems/physics"
)

// capture decides whether an agent standing at the tentative position (px, py)
// covers a cell it does not own. The footprint is the cell-index box
// [floor((p-r)/cs), floor((p+r)/cs)) on both axes, scanned x-outer, y-inner.
// The first foreign cell found is claimed and true is returned, so exactly one
// cell changes per call. Cells outside the board are skipped.
func (s *Simulation) capture(px, py float64, id board.Owner, axis Axis) bool {
	r := s.radius
	cs := s.cellSize
	bx := int(math.Floor((px - r) / cs))
	by := int(math.Floor((py - r) / cs))
	tx := int(math.Floor((px + r) / cs))
	ty := int(math.Floor((py + r) / cs))

	for x := bx; x < tx; x++ {
		for y := by; y < ty; y++ {
			if !s.board.InBounds(x, y) {
				continue
			}
			prev := s.board.OwnerAt(x, y)
			if prev == id {
				continue
			}
			if s.mode == CaptureExact && !s.covers(x, y, px, py) {
				continue
			}
			s.board.SetOwner(x, y, id)
			s.stats.Captures[id]++
			s.logger.Debug("cell captured",
				log.Int("agent", int(id)),
				log.Int("x", x),
				log.Int("y", y),
				log.String("axis", axis.String()),
			)
			s.publish(EventCellCaptured, CaptureEvent{
				Frame:    s.stats.Frames,
				Agent:    id,
				Previous: prev,
				CellX:    x,
				CellY:    y,
				Axis:     axis,
			})
			return true
		}
	}
	return false
}

// covers is the exact-mode test: does the circle touch cell (x, y)?
func (s *Simulation) covers(x, y int, px, py float64) bool {
	cs := s.cellSize
	left := float64(x) * cs
	top := float64(y) * cs
	return physics.CircleIntersectsRect(left, left+cs, top, top+cs, px, py, s.radius)
}
