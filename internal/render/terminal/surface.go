package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/zeusync/territory/internal/core/sim"
	"github.com/zeusync/territory/internal/render"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2

// Surface maps screen units onto terminal cells. Board cells and agent bodies
// become background colors; text is drawn over whatever is underneath.
// Borders are below terminal resolution and are dropped.
type Surface struct {
	screen tcell.Screen

	canvasW, canvasH int
	cols, rows       int
	// unitX and unitY are screen units per terminal column and row.
	unitX, unitY float64
	bg           []tcell.Color
}

var _ render.Surface = (*Surface)(nil)

func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// SetCanvasSize picks the largest scale at which the canvas fits the terminal.
func (s *Surface) SetCanvasSize(width, height int) {
	s.canvasW, s.canvasH = width, height
	s.Resize()
}

// Resize recomputes the mapping after the terminal size changed.
func (s *Surface) Resize() {
	s.cols, s.rows = s.screen.Size()
	if s.cols <= 0 || s.rows <= 0 || s.canvasW <= 0 || s.canvasH <= 0 {
		s.unitX, s.unitY = 0, 0
		s.bg = nil
		return
	}
	scale := math.Max(float64(s.canvasW)/float64(s.cols), float64(s.canvasH)/float64(s.rows*cellAspect))
	s.unitX, s.unitY = scale, scale*cellAspect
	s.bg = make([]tcell.Color, s.cols*s.rows)
}

// Cell reports the background color the surface last put at col, row.
func (s *Surface) Cell(col, row int) (tcell.Color, bool) {
	if !s.inside(col, row) {
		return tcell.ColorDefault, false
	}
	return s.bg[row*s.cols+col], true
}

func (s *Surface) Clear(c sim.Color) {
	tc := toTcell(c)
	s.screen.Fill(' ', tcell.StyleDefault.Background(tc))
	for i := range s.bg {
		s.bg[i] = tc
	}
}

// FillRect paints every terminal cell whose center lies in the rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c sim.Color) {
	if s.unitX == 0 {
		return
	}
	tc := toTcell(c)
	c0, c1 := s.span(x, x+w, s.unitX, s.cols)
	r0, r1 := s.span(y, y+h, s.unitY, s.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.paint(col, row, tc)
		}
	}
}

func (s *Surface) FillRectBorder(float64, float64, float64, float64, sim.Color) {}

// FillCircle paints cells whose centers fall inside the circle, and always the
// cell holding the center itself.
func (s *Surface) FillCircle(cx, cy, r float64, c sim.Color) {
	if s.unitX == 0 {
		return
	}
	tc := toTcell(c)
	c0, c1 := s.span(cx-r, cx+r, s.unitX, s.cols)
	r0, r1 := s.span(cy-r, cy+r, s.unitY, s.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			dx := (float64(col)+0.5)*s.unitX - cx
			dy := (float64(row)+0.5)*s.unitY - cy
			if dx*dx+dy*dy <= r*r {
				s.paint(col, row, tc)
			}
		}
	}
	s.paint(int(cx/s.unitX), int(cy/s.unitY), tc)
}

func (s *Surface) FillCircleBorder(float64, float64, float64, sim.Color) {}

func (s *Surface) DrawText(text string, x, y float64, c sim.Color) {
	if s.unitX == 0 {
		return
	}
	col, row := int(x/s.unitX), int(y/s.unitY)
	fg := toTcell(c)
	for _, ch := range text {
		if s.inside(col, row) {
			style := tcell.StyleDefault.Foreground(fg).Background(s.bg[row*s.cols+col])
			s.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
}

// span converts [lo, hi) in screen units into the half-open range of
// terminal indices whose centers it contains, clipped to [0, limit).
func (s *Surface) span(lo, hi, unit float64, limit int) (int, int) {
	first := int(math.Ceil(lo/unit - 0.5))
	last := int(math.Ceil(hi/unit - 0.5))
	return max(first, 0), min(last, limit)
}

func (s *Surface) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < s.cols && row < s.rows
}

func (s *Surface) paint(col, row int, c tcell.Color) {
	if !s.inside(col, row) {
		return
	}
	s.bg[row*s.cols+col] = c
	s.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(c))
}

func toTcell(c sim.Color) tcell.Color {
	r, g, b, _ := c.Components()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
