package sim

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorPacking(t *testing.T) {
	c := RGBA8(0x12, 0x34, 0x56, 0x78)
	assert.Equal(t, Color(0x12345678), c)

	r, g, b, a := c.Components()
	assert.Equal(t, []uint8{0x12, 0x34, 0x56, 0x78}, []uint8{r, g, b, a})
	assert.Equal(t, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}, c.NRGBA())
	assert.Equal(t, "#12345678", c.String())
}

func TestColorImplementsColorModel(t *testing.T) {
	got := color.RGBAModel.Convert(RGBA8(255, 0, 0, 255)).(color.RGBA)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, got)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, RGBA8(255, 0, 0, 255), c)

	c, err = ParseColor("0000ff80")
	require.NoError(t, err)
	assert.Equal(t, RGBA8(0, 0, 255, 0x80), c)

	_, err = ParseColor("#fff")
	assert.Error(t, err)
	_, err = ParseColor("#gg0000")
	assert.Error(t, err)

	var u Color
	require.NoError(t, u.UnmarshalText([]byte("#00ff00")))
	assert.Equal(t, RGBA8(0, 255, 0, 255), u)
	text, err := u.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#00ff00ff", string(text))
}
