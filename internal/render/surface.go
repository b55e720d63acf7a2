package render

import (
	"errors"

	"github.com/zeusync/territory/internal/core/sim"
)

// ErrUnknownBackend is returned when a backend name has no surface.
var ErrUnknownBackend = errors.New("unknown render backend")

// Surface is the drawing target a host supplies. Coordinates are screen
// units, the same space the simulation moves agents in. Draw calls are
// fire-and-forget; backends report their own failures out of band.
type Surface interface {
	// SetCanvasSize is called before the first frame with the screen size
	// rounded up to whole units.
	SetCanvasSize(width, height int)
	Clear(c sim.Color)
	FillRect(x, y, w, h float64, c sim.Color)
	FillRectBorder(x, y, w, h float64, c sim.Color)
	FillCircle(cx, cy, r float64, c sim.Color)
	FillCircleBorder(cx, cy, r float64, c sim.Color)
	// DrawText places text with its top-left corner at (x, y).
	DrawText(text string, x, y float64, c sim.Color)
}
