// Package physics is a minimal rigid-body integrator for a top-down field.
// There is no gravity and no collision response.
package physics

import "github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"

// Body is a point mass with an axis-aligned footprint.
type Body struct {
	Pos        core.Vec2
	Vel        core.Vec2
	Mass       float64
	HalfExtent core.Vec2

	force core.Vec2
}

// NewBody creates a body at rest. Non-positive mass becomes 1.
func NewBody(pos core.Vec2, mass float64, half core.Vec2) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{Pos: pos, Mass: mass, HalfExtent: half}
}

// Position returns the body's center.
func (b *Body) Position() core.Vec2 { return b.Pos }

// SetPosition teleports the body.
func (b *Body) SetPosition(p core.Vec2) { b.Pos = p }

// Velocity returns the current velocity.
func (b *Body) Velocity() core.Vec2 { return b.Vel }

// SetVelocity overwrites the velocity.
func (b *Body) SetVelocity(v core.Vec2) { b.Vel = v }

// HalfExtents returns the footprint half size.
func (b *Body) HalfExtents() core.Vec2 { return b.HalfExtent }

// AddForce accumulates a force for the next Integrate call.
func (b *Body) AddForce(f core.Vec2) {
	b.force = b.force.Add(f)
}

// PendingForce returns the force accumulated since the last Integrate.
func (b *Body) PendingForce() core.Vec2 {
	return b.force
}

// Integrate advances the body by dt using semi-implicit Euler and clears
// the accumulated force.
func (b *Body) Integrate(dt float64) {
	b.Vel = b.Vel.Add(b.force.Scale(dt / b.Mass))
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.force = core.Vec2{}
}

// Stop zeroes velocity and pending force.
func (b *Body) Stop() {
	b.Vel = core.Vec2{}
	b.force = core.Vec2{}
}

// Contains reports whether p falls inside the body's footprint.
func (b *Body) Contains(p core.Vec2) bool {
	d := p.Sub(b.Pos)
	return d.X >= -b.HalfExtent.X && d.X <= b.HalfExtent.X &&
		d.Y >= -b.HalfExtent.Y && d.Y <= b.HalfExtent.Y
}
