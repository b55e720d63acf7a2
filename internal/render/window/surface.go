package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/zeusync/territory/internal/core/sim"
	"github.com/zeusync/territory/internal/render"
)

const (
	gridStroke    = 1
	outlineStroke = 1.5
)

// Surface draws onto the ebiten screen image handed to Game.Draw. The target
// changes every frame; calls made while no target is bound are dropped.
type Surface struct {
	target        *ebiten.Image
	width, height int
}

var _ render.Surface = (*Surface)(nil)

func NewSurface() *Surface { return &Surface{} }

func (s *Surface) bind(img *ebiten.Image) { s.target = img }

// Size is the negotiated canvas size, zero before the first frame.
func (s *Surface) Size() (width, height int) { return s.width, s.height }

func (s *Surface) SetCanvasSize(width, height int) {
	s.width, s.height = width, height
}

func (s *Surface) Clear(c sim.Color) {
	if s.target == nil {
		return
	}
	s.target.Fill(c)
}

func (s *Surface) FillRect(x, y, w, h float64, c sim.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) FillRectBorder(x, y, w, h float64, c sim.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeRect(s.target, float32(x), float32(y), float32(w), float32(h), gridStroke, c, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c sim.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) FillCircleBorder(cx, cy, r float64, c sim.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeCircle(s.target, float32(cx), float32(cy), float32(r), outlineStroke, c, true)
}

// DrawText uses the ebiten debug font, which is always white; c is ignored.
func (s *Surface) DrawText(text string, x, y float64, _ sim.Color) {
	if s.target == nil {
		return
	}
	ebitenutil.DebugPrintAt(s.target, text, int(x), int(y))
}
