package render

import (
	"fmt"

	"github.com/zeusync/territory/internal/core/sim"
)

// Theme holds the colors that do not belong to an agent.
type Theme struct {
	Background sim.Color
	Grid       sim.Color
	Outline    sim.Color
	Text       sim.Color
	ShowGrid   bool
	Overlay    bool
}

func DefaultTheme() Theme {
	return Theme{
		Background: sim.RGBA8(0, 0, 0, 255),
		Grid:       sim.RGBA8(0, 0, 0, 64),
		Outline:    sim.RGBA8(255, 255, 255, 255),
		Text:       sim.RGBA8(255, 0, 255, 255),
		ShowGrid:   true,
		Overlay:    true,
	}
}

// OverlayMargin is the offset of the overlay text from the top-left corner.
const OverlayMargin = 4

// Renderer turns a Snapshot into Surface calls. It keeps no per-frame state.
type Renderer struct {
	theme Theme
}

func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

func (r *Renderer) Theme() Theme { return r.theme }

// Draw emits, in order: one Clear, every cell row-major (fill, then border
// when the grid is on), each agent in index order (fill, then outline), and
// the overlay line.
func (r *Renderer) Draw(s Surface, snap sim.Snapshot) {
	s.Clear(r.theme.Background)

	cs := snap.CellSize
	for y := 0; y < snap.BoardHeight; y++ {
		for x := 0; x < snap.BoardWidth; x++ {
			owner := snap.OwnerAt(x, y)
			left, top := float64(x)*cs, float64(y)*cs
			s.FillRect(left, top, cs, cs, snap.Agents[owner].CellColor)
			if r.theme.ShowGrid {
				s.FillRectBorder(left, top, cs, cs, r.theme.Grid)
			}
		}
	}

	for _, a := range snap.Agents {
		s.FillCircle(a.Position.X, a.Position.Y, a.Radius, a.BodyColor)
		s.FillCircleBorder(a.Position.X, a.Position.Y, a.Radius, r.theme.Outline)
	}

	if r.theme.Overlay {
		s.DrawText(OverlayText(snap), OverlayMargin, OverlayMargin, r.theme.Text)
	}
}

// OverlayText is the status line: frame number and cells held per agent.
func OverlayText(snap sim.Snapshot) string {
	return fmt.Sprintf("frame %d  A %d  B %d",
		snap.Frame, snap.Count(sim.AgentA), snap.Count(sim.AgentB))
}
