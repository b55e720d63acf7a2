package board

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Owner identifies the agent that currently claims a cell.
type Owner uint8

// Board is a fixed-size ownership grid stored row-major (index = y*width + x).
// It is created once and never resized.
type Board struct {
	width  int
	height int
	cells  []Owner
}

// New builds a width x height board where columns < width/2 belong to left and
// the rest to right. Non-positive dimensions are a programming error and panic.
func New(width, height int, left, right Owner) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("board: invalid dimensions %dx%d", width, height))
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Owner, width*height),
	}
	half := width / 2
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			if x < half {
				b.cells[row+x] = left
			} else {
				b.cells[row+x] = right
			}
		}
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) addresses a cell.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// OwnerAt returns the owner of (x, y). Callers range-check first; an
// out-of-range read panics.
func (b *Board) OwnerAt(x, y int) Owner {
	return b.cells[b.index(x, y)]
}

// SetOwner assigns (x, y) to owner. Same contract as OwnerAt.
func (b *Board) SetOwner(x, y int, owner Owner) {
	b.cells[b.index(x, y)] = owner
}

// Count returns how many cells owner holds.
func (b *Board) Count(owner Owner) int {
	n := 0
	for _, c := range b.cells {
		if c == owner {
			n++
		}
	}
	return n
}

// Cells returns a copy of the row-major cell slice.
func (b *Board) Cells() []Owner {
	out := make([]Owner, len(b.cells))
	copy(out, b.cells)
	return out
}

// Fingerprint hashes the ownership layout. Equal boards hash equal.
func (b *Board) Fingerprint() uint64 {
	return Fingerprint(b.cells)
}

// Fingerprint hashes a row-major ownership slice, as returned by Cells.
func Fingerprint(cells []Owner) uint64 {
	buf := make([]byte, len(cells))
	for i, c := range cells {
		buf[i] = byte(c)
	}
	return xxhash.Sum64(buf)
}

func (b *Board) index(x, y int) int {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("board: cell (%d,%d) out of range %dx%d", x, y, b.width, b.height))
	}
	return y*b.width + x
}
