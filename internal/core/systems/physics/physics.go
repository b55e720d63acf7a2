package physics

import "math"

// Vec2 is a 2D vector in screen units. Used for positions and headings.
type Vec2 struct {
	X float64
	Y float64
}

// FromAngle returns the unit vector for an angle given in degrees, measured
// clockwise from +X in screen space (y grows downwards).
func FromAngle(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// CircleIntersectsRect reports whether the circle (cx, cy, radius) overlaps the
// axis-aligned rectangle. The center is clamped onto the rectangle and the
// squared distance to the clamp point is compared with radius², so a center
// inside the rectangle always intersects.
func CircleIntersectsRect(left, right, top, bottom, cx, cy, radius float64) bool {
	nearestX := clamp(cx, left, right)
	nearestY := clamp(cy, top, bottom)
	dx := cx - nearestX
	dy := cy - nearestY
	return dx*dx+dy*dy <= radius*radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
