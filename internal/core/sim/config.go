package sim

import (
	"fmt"
	"strings"
)

// CaptureMode selects which cells under an agent's footprint count as covered.
type CaptureMode uint8

const (
	// CaptureBoundingBox treats every cell of the footprint's cell-index box as covered.
	CaptureBoundingBox CaptureMode = iota
	// CaptureExact additionally requires the circle to touch the cell rectangle.
	CaptureExact
)

func (m CaptureMode) String() string {
	switch m {
	case CaptureBoundingBox:
		return "bbox"
	case CaptureExact:
		return "exact"
	default:
		return fmt.Sprintf("CaptureMode(%d)", uint8(m))
	}
}

// ParseCaptureMode accepts "bbox" (or "bounding-box") and "exact".
func ParseCaptureMode(s string) (CaptureMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bbox", "bounding-box":
		return CaptureBoundingBox, nil
	case "exact":
		return CaptureExact, nil
	default:
		return 0, fmt.Errorf("unknown capture mode %q", s)
	}
}

// Config holds the construction-time parameters of a Simulation. They are
// immutable for the run except PlayerSpeed, which SetPlayerSpeed rebinds.
type Config struct {
	BoardWidth  int
	BoardHeight int
	CellSize    float64
	PlayerSpeed float64
	// RadiusFactor scales CellSize into the shared player radius.
	RadiusFactor float64
	CaptureMode  CaptureMode
	Palette      Palette
}

// DefaultConfig returns a 40x20 board of 20-unit cells with speed 500.
func DefaultConfig() Config {
	return Config{
		BoardWidth:   40,
		BoardHeight:  20,
		CellSize:     20,
		PlayerSpeed:  500,
		RadiusFactor: 0.5,
		CaptureMode:  CaptureBoundingBox,
		Palette:      DefaultPalette(),
	}
}

// PlayerRadius derives the shared agent radius from the cell size.
func (c Config) PlayerRadius() float64 {
	return c.CellSize * c.RadiusFactor
}

func (c Config) ScreenWidth() float64  { return float64(c.BoardWidth) * c.CellSize }
func (c Config) ScreenHeight() float64 { return float64(c.BoardHeight) * c.CellSize }
