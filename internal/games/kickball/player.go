package kickball

import (
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/bounds"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/config"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/physics"
)

// Player is the character moved by direction input.
type Player struct {
	*physics.Body

	speed         float64
	usePhysics    bool
	useConstraint bool
	tracker       *bounds.Tracker

	// target is set by MoveToPosition callers that walk over several ticks.
	target *core.Vec2
}

// NewPlayer creates a player at pos.
func NewPlayer(pos core.Vec2, cfg config.KickballPlayer, tracker *bounds.Tracker) *Player {
	return &Player{
		Body:          physics.NewBody(pos, 1, core.V(cfg.Radius, cfg.Radius)),
		speed:         cfg.MoveSpeed,
		usePhysics:    cfg.UsePhysicsMovement,
		useConstraint: cfg.UseBoundaryConstraint,
		tracker:       tracker,
	}
}

// Move applies one tick of direction input. With physics movement the
// velocity is set and the integrator moves the body; otherwise the position
// is stepped directly.
func (p *Player) Move(dir core.Vec2, dt float64) {
	if !dir.IsZero() {
		p.target = nil
	}
	v := dir.Normalize().Scale(p.speed)

	if p.usePhysics {
		if p.target == nil {
			p.Vel = v
		}
		return
	}

	next := p.Pos.Add(v.Scale(dt))
	if p.useConstraint {
		next = p.tracker.ClampToBounds(next)
	}
	p.Pos = next
}

// MoveToPosition steps toward target by at most speed*dt. The target is
// clamped to the bounds first when the constraint is on.
func (p *Player) MoveToPosition(target core.Vec2, dt float64) {
	if p.useConstraint {
		target = p.tracker.ClampToBounds(target)
	}
	d := target.Sub(p.Pos)
	step := p.speed * dt
	if d.Len() <= step {
		p.Pos = target
		return
	}
	p.Pos = p.Pos.Add(d.Normalize().Scale(step))
}

// WalkTo sets a target that FollowTarget approaches each tick.
func (p *Player) WalkTo(target core.Vec2) {
	p.target = &target
	if p.usePhysics {
		p.Vel = core.Vec2{}
	}
}

// FollowTarget advances toward the walk target, if any, and clears it on arrival.
func (p *Player) FollowTarget(dt float64) {
	if p.target == nil {
		return
	}
	p.MoveToPosition(*p.target, dt)
	reached := *p.target
	if p.useConstraint {
		reached = p.tracker.ClampToBounds(reached)
	}
	if p.Pos == reached {
		p.target = nil
	}
}

// Walking reports whether a walk target is pending.
func (p *Player) Walking() bool {
	return p.target != nil
}

// InReach reports whether pos is within reach of the player's center.
func (p *Player) InReach(pos core.Vec2, reach float64) bool {
	return pos.Sub(p.Pos).Len() <= reach
}
