package render

import (
	"fmt"
	"strings"

	"github.com/zeusync/territory/internal/core/sim"
)

// Op names a Surface method.
type Op uint8

const (
	OpSetCanvasSize Op = iota
	OpClear
	OpFillRect
	OpFillRectBorder
	OpFillCircle
	OpFillCircleBorder
	OpDrawText
)

var opNames = [...]string{
	OpSetCanvasSize:    "canvas",
	OpClear:            "clear",
	OpFillRect:         "rect",
	OpFillRectBorder:   "rect-border",
	OpFillCircle:       "circle",
	OpFillCircleBorder: "circle-border",
	OpDrawText:         "text",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", o)
}

// Command is one recorded Surface call. Unused fields are zero.
type Command struct {
	Op      Op
	X, Y    float64
	W, H    float64
	R       float64
	Color   sim.Color
	Text    string
	CanvasW int
	CanvasH int
}

// Recorder is a Surface that stores every call. Useful for tests and for
// dumping a frame as text.
type Recorder struct {
	Commands []Command
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) SetCanvasSize(width, height int) {
	r.Commands = append(r.Commands, Command{Op: OpSetCanvasSize, CanvasW: width, CanvasH: height})
}

func (r *Recorder) Clear(c sim.Color) {
	r.Commands = append(r.Commands, Command{Op: OpClear, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c sim.Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillRectBorder(x, y, w, h float64, c sim.Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillRectBorder, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c sim.Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillCircle, X: cx, Y: cy, R: rad, Color: c})
}

func (r *Recorder) FillCircleBorder(cx, cy, rad float64, c sim.Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillCircleBorder, X: cx, Y: cy, R: rad, Color: c})
}

func (r *Recorder) DrawText(text string, x, y float64, c sim.Color) {
	r.Commands = append(r.Commands, Command{Op: OpDrawText, X: x, Y: y, Text: text, Color: c})
}

// Filter returns the recorded commands of one kind.
func (r *Recorder) Filter(op Op) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) String() string {
	var b strings.Builder
	for _, c := range r.Commands {
		switch c.Op {
		case OpSetCanvasSize:
			fmt.Fprintf(&b, "%s %dx%d\n", c.Op, c.CanvasW, c.CanvasH)
		case OpClear:
			fmt.Fprintf(&b, "%s %s\n", c.Op, c.Color)
		case OpFillRect, OpFillRectBorder:
			fmt.Fprintf(&b, "%s %g,%g %gx%g %s\n", c.Op, c.X, c.Y, c.W, c.H, c.Color)
		case OpFillCircle, OpFillCircleBorder:
			fmt.Fprintf(&b, "%s %g,%g r=%g %s\n", c.Op, c.X, c.Y, c.R, c.Color)
		case OpDrawText:
			fmt.Fprintf(&b, "%s %g,%g %q %s\n", c.Op, c.X, c.Y, c.Text, c.Color)
		}
	}
	return b.String()
}
