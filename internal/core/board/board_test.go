package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartition(t *testing.T) {
	for _, dims := range [][2]int{{40, 20}, {7, 3}, {1, 1}, {2, 5}} {
		w, h := dims[0], dims[1]
		b := New(w, h, 0, 1)
		require.Equal(t, w, b.Width())
		require.Equal(t, h, b.Height())

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				want := Owner(1)
				if x < w/2 {
					want = 0
				}
				assert.Equal(t, want, b.OwnerAt(x, y), "cell (%d,%d) on %dx%d", x, y, w, h)
			}
		}
	}
}

func TestCountAfterPartition(t *testing.T) {
	b := New(40, 20, 0, 1)
	assert.Equal(t, 400, b.Count(0))
	assert.Equal(t, 400, b.Count(1))

	odd := New(5, 2, 0, 1)
	assert.Equal(t, 4, odd.Count(0))
	assert.Equal(t, 6, odd.Count(1))
}

func TestSetOwner(t *testing.T) {
	b := New(4, 4, 0, 1)
	b.SetOwner(3, 2, 0)
	assert.Equal(t, Owner(0), b.OwnerAt(3, 2))
	assert.Equal(t, 9, b.Count(0))

	cells := b.Cells()
	assert.Equal(t, Owner(0), cells[2*4+3])
	cells[0] = 1
	assert.Equal(t, Owner(0), b.OwnerAt(0, 0), "Cells must return a copy")
}

func TestOutOfRangePanics(t *testing.T) {
	b := New(4, 4, 0, 1)
	assert.False(t, b.InBounds(-1, 0))
	assert.False(t, b.InBounds(4, 0))
	assert.False(t, b.InBounds(0, 4))
	assert.True(t, b.InBounds(3, 3))

	assert.Panics(t, func() { b.OwnerAt(4, 0) })
	assert.Panics(t, func() { b.OwnerAt(0, -1) })
	assert.Panics(t, func() { b.SetOwner(-1, 0, 1) })
}

func TestInvalidDimensionsPanic(t *testing.T) {
	assert.Panics(t, func() { New(0, 10, 0, 1) })
	assert.Panics(t, func() { New(10, -1, 0, 1) })
}

func TestFingerprint(t *testing.T) {
	a := New(10, 6, 0, 1)
	b := New(10, 6, 0, 1)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, a.Fingerprint(), Fingerprint(a.Cells()))

	b.SetOwner(7, 3, 0)
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
