package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircleIntersectsRect(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy float64
		radius float64
		want   bool
	}{
		{"center inside", 15, 15, 1, true},
		{"center inside zero radius", 15, 15, 0, true},
		{"touching left edge", 5, 15, 5, true},
		{"just outside left edge", 4.9, 15, 5, false},
		{"corner within radius", 7, 7, 4.5, true},
		{"corner outside radius", 6, 6, 5, false},
		{"far away", 100, 100, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircleIntersectsRect(10, 20, 10, 20, tt.cx, tt.cy, tt.radius)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(45)
	assert.InDelta(t, math.Sqrt2/2, v.X, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, v.Y, 1e-12)

	v = FromAngle(225)
	assert.InDelta(t, -math.Sqrt2/2, v.X, 1e-12)
	assert.InDelta(t, -math.Sqrt2/2, v.Y, 1e-12)
	assert.InDelta(t, 1.0, math.Hypot(v.X, v.Y), 1e-12)
}

func TestVec2Scale(t *testing.T) {
	v := Vec2{X: 1, Y: -2}
	assert.Equal(t, Vec2{X: 2, Y: -4}, v.Scale(2))
	assert.Equal(t, Vec2{}, v.Scale(0))
}
