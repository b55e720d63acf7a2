package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zeusync/territory/internal/core/sim"
	"github.com/zeusync/territory/internal/render"
)

const (
	gridWidth    = 1
	outlineWidth = 1.5
)

// Surface rasterizes into an in-memory gg context. Draw errors are collected
// and returned by Err, so a frame can still be encoded after a partial failure.
type Surface struct {
	dc   *gg.Context
	face text.Face
	err  error
}

var _ render.Surface = (*Surface)(nil)

// New loads the bundled Go Regular font at fontSize points. The canvas is
// allocated by SetCanvasSize.
func New(fontSize float64) (*Surface, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Surface{face: src.Face(fontSize)}, nil
}

// SetCanvasSize reallocates the canvas when the size changes.
func (s *Surface) SetCanvasSize(width, height int) {
	if s.dc != nil {
		if s.dc.Width() == width && s.dc.Height() == height {
			return
		}
		s.record(s.dc.Close())
	}
	s.dc = gg.NewContext(width, height)
	s.dc.SetFont(s.face)
}

func (s *Surface) Clear(c sim.Color) {
	if s.dc == nil {
		return
	}
	s.dc.ClearWithColor(gg.FromColor(c))
}

func (s *Surface) FillRect(x, y, w, h float64, c sim.Color) {
	if s.dc == nil {
		return
	}
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.record(s.dc.Fill())
}

func (s *Surface) FillRectBorder(x, y, w, h float64, c sim.Color) {
	if s.dc == nil {
		return
	}
	s.dc.SetColor(c)
	s.dc.SetLineWidth(gridWidth)
	s.dc.DrawRectangle(x, y, w, h)
	s.record(s.dc.Stroke())
}

func (s *Surface) FillCircle(cx, cy, r float64, c sim.Color) {
	if s.dc == nil {
		return
	}
	s.dc.SetColor(c)
	s.dc.DrawCircle(cx, cy, r)
	s.record(s.dc.Fill())
}

func (s *Surface) FillCircleBorder(cx, cy, r float64, c sim.Color) {
	if s.dc == nil {
		return
	}
	s.dc.SetColor(c)
	s.dc.SetLineWidth(outlineWidth)
	s.dc.DrawCircle(cx, cy, r)
	s.record(s.dc.Stroke())
}

// DrawText shifts y by the font ascent; gg positions text on its baseline.
func (s *Surface) DrawText(str string, x, y float64, c sim.Color) {
	if s.dc == nil {
		return
	}
	s.dc.SetColor(c)
	s.dc.DrawString(str, x, y+s.face.Metrics().Ascent)
}

// Image returns the current frame, nil before SetCanvasSize.
func (s *Surface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	s.record(s.dc.FlushGPU())
	return s.dc.Image()
}

// EncodePNG writes the current frame.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.dc == nil {
		return errors.New("raster: canvas not sized")
	}
	if err := s.dc.FlushGPU(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Err returns the draw errors seen since the last ResetErr.
func (s *Surface) Err() error { return s.err }

func (s *Surface) ResetErr() { s.err = nil }

func (s *Surface) Close() error {
	if s.dc == nil {
		return nil
	}
	err := s.dc.Close()
	s.dc = nil
	return err
}

func (s *Surface) record(err error) {
	if err != nil {
		s.err = errors.Join(s.err, err)
	}
}
