package bounds

import "github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"

// Rect is an axis-aligned world rectangle. Min is component-wise <= Max.
type Rect struct {
	Min, Max core.Vec2
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() core.Vec2 {
	return core.Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Size returns the width and height.
func (r Rect) Size() core.Vec2 {
	return r.Max.Sub(r.Min)
}

// Area returns width * height.
func (r Rect) Area() float64 {
	s := r.Size()
	return s.X * s.Y
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Area() == 0
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p core.Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ClampPoint returns the point of r nearest to p, clamping each axis on its own.
func (r Rect) ClampPoint(p core.Vec2) core.Vec2 {
	return core.Vec2{
		X: core.ClampF(p.X, r.Min.X, r.Max.X),
		Y: core.ClampF(p.Y, r.Min.Y, r.Max.Y),
	}
}

// ClampWithFootprint clamps the center p of a box with half extents half so
// the whole box stays inside r. An axis where the box is larger than r pins
// the center to the midpoint of r on that axis.
func (r Rect) ClampWithFootprint(p, half core.Vec2) core.Vec2 {
	lo, hi := r.inset(half)
	return core.Vec2{
		X: core.ClampF(p.X, lo.X, hi.X),
		Y: core.ClampF(p.Y, lo.Y, hi.Y),
	}
}

// Expand grows r by d on every side. A negative d that would invert an axis
// collapses it to its midpoint.
func (r Rect) Expand(d float64) Rect {
	out := Rect{
		Min: core.Vec2{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: core.Vec2{X: r.Max.X + d, Y: r.Max.Y + d},
	}
	c := r.Center()
	if out.Min.X > out.Max.X {
		out.Min.X, out.Max.X = c.X, c.X
	}
	if out.Min.Y > out.Max.Y {
		out.Min.Y, out.Max.Y = c.Y, c.Y
	}
	return out
}

// inset returns the effective range for a box center with the given half
// extents. Inverted axes collapse to the midpoint.
func (r Rect) inset(half core.Vec2) (core.Vec2, core.Vec2) {
	lo := r.Min.Add(half)
	hi := r.Max.Sub(half)
	c := r.Center()
	if lo.X > hi.X {
		lo.X, hi.X = c.X, c.X
	}
	if lo.Y > hi.Y {
		lo.Y, hi.Y = c.Y, c.Y
	}
	return lo, hi
}
