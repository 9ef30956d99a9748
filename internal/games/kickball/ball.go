package kickball

import (
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/config"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/physics"
)

// Ball is the kickable rigid body. It slows down on its own every physics step.
type Ball struct {
	*physics.Body

	dampFactor float64
	rollFactor float64
	stopSpeed  float64
}

// NewBall creates a ball at rest at pos.
func NewBall(pos core.Vec2, cfg config.KickballBall) *Ball {
	return &Ball{
		Body:       physics.NewBody(pos, cfg.Mass, core.V(cfg.Radius, cfg.Radius)),
		dampFactor: cfg.DampFactor,
		rollFactor: cfg.RollFactor,
		stopSpeed:  cfg.StopSpeed,
	}
}

// Kicked submits a kick force for the next physics step.
func (b *Ball) Kicked(force core.Vec2) {
	b.AddForce(force)
}

// ApplyDamping decays the velocity: a flat factor first, then a rolling
// factor while the ball is still moving. Slower than stop speed, it stops.
func (b *Ball) ApplyDamping() {
	b.Vel = b.Vel.Scale(b.dampFactor)

	speed := b.Vel.Len()
	if speed > b.stopSpeed {
		b.Vel = b.Vel.Scale(b.rollFactor)
	} else if speed < b.stopSpeed {
		b.Vel = core.Vec2{}
	}
}

// Moving reports whether the ball has any velocity.
func (b *Ball) Moving() bool {
	return !b.Vel.IsZero()
}
