package sim

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a packed, non-premultiplied 0xRRGGBBAA value.
type Color uint32

var _ color.Color = Color(0)

// RGBA8 packs 8-bit channels into a Color.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// Components unpacks the 8-bit channels.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements color.Color (alpha-premultiplied, 16-bit range).
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Components()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// ParseColor accepts "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return Color(v), nil
}

// MarshalText writes the #RRGGBBAA form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Palette holds the display attributes of both agents, indexed by agent ID.
type Palette struct {
	Bodies [AgentCount]Color
	Cells  [AgentCount]Color
}

// DefaultPalette paints agent A's territory red and agent B's blue; bodies are
// darker shades of the same hue so they stay visible on their own ground.
func DefaultPalette() Palette {
	return Palette{
		Bodies: [AgentCount]Color{RGBA8(140, 0, 0, 255), RGBA8(0, 0, 140, 255)},
		Cells:  [AgentCount]Color{RGBA8(255, 0, 0, 255), RGBA8(0, 0, 255, 255)},
	}
}
