package bounds

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
)

// Mode selects how a policy keeps an entity inside the bounds.
type Mode string

const (
	ModeClamp  Mode = "clamp"  // Overwrite position every frame
	ModeSpring Mode = "spring" // Push back with a force every physics step
)

// Default force gains for the spring policy.
const (
	DefaultBoundaryForceGain = 50.0
	DefaultDampingForceGain  = 10.0
)

var (
	// ErrUnknownMode is returned for a Mode other than clamp or spring.
	ErrUnknownMode = errors.New("bounds: unknown policy mode")
	// ErrNoRigidBody is returned when a spring policy has no body to push.
	ErrNoRigidBody = errors.New("bounds: spring policy needs a rigid body")
	// ErrNoPositioner is returned when a clamp policy has nothing to move.
	ErrNoPositioner = errors.New("bounds: clamp policy needs a positioner")
)

// ParseMode converts a config string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeClamp, ModeSpring:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Positioner is an entity whose position can be read and overwritten.
type Positioner interface {
	Position() core.Vec2
	SetPosition(p core.Vec2)
}

// RigidBody is an entity moved by an external integrator.
// Forces added are consumed by the next integration step.
type RigidBody interface {
	Position() core.Vec2
	Velocity() core.Vec2
	AddForce(f core.Vec2)
}

// Footprint reports the half extents of an entity's collision box.
type Footprint interface {
	HalfExtents() core.Vec2
}

// PolicyConfig selects and tunes a boundary policy.
type PolicyConfig struct {
	Mode              Mode
	UseFootprint      bool
	BoundaryForceGain float64
	DampingForceGain  float64
}

// DefaultPolicyConfig returns a footprint-aware clamp.
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		Mode:              ModeClamp,
		UseFootprint:      true,
		BoundaryForceGain: DefaultBoundaryForceGain,
		DampingForceGain:  DefaultDampingForceGain,
	}
}

// Deps are the collaborators a policy acts on.
type Deps struct {
	Positioner Positioner
	RigidBody  RigidBody
	Footprint  Footprint
	Logger     *log.Logger // Defaults to the tracker's logger
}

// Policy is a per-entity boundary behavior driven by the frame loop.
// Each variant ignores the cadence it does not use.
type Policy interface {
	Mode() Mode
	OnFrame()
	OnPhysicsStep(dt float64)
}

// NewPolicy builds the policy selected by cfg.Mode.
func NewPolicy(cfg PolicyConfig, tracker *Tracker, deps Deps) (Policy, error) {
	if tracker == nil {
		return nil, errors.New("bounds: policy needs a tracker")
	}
	logger := deps.Logger
	if logger == nil {
		logger = tracker.Logger()
	}

	var fp Footprint
	if cfg.UseFootprint {
		fp = deps.Footprint
		if fp == nil {
			logger.Warn("bounds: footprint requested but missing, clamping the center point", "mode", cfg.Mode)
		}
	}

	switch cfg.Mode {
	case ModeClamp:
		if deps.Positioner == nil {
			return nil, ErrNoPositioner
		}
		return &HardClamp{tracker: tracker, target: deps.Positioner, footprint: fp}, nil
	case ModeSpring:
		if deps.RigidBody == nil {
			return nil, ErrNoRigidBody
		}
		return &SpringForce{
			tracker:   tracker,
			body:      deps.RigidBody,
			footprint: fp,
			gain:      cfg.BoundaryForceGain,
			damping:   cfg.DampingForceGain,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}
}

func halfOf(fp Footprint) core.Vec2 {
	if fp == nil {
		return core.Vec2{}
	}
	return fp.HalfExtents()
}

// HardClamp overwrites the position each frame so the footprint stays inside
// the bounds. Velocity is left alone.
type HardClamp struct {
	tracker   *Tracker
	target    Positioner
	footprint Footprint
}

// Mode implements Policy.
func (c *HardClamp) Mode() Mode { return ModeClamp }

// OnFrame clamps the target against the current rectangle.
func (c *HardClamp) OnFrame() {
	if !c.tracker.Active() {
		return
	}
	r, _ := c.tracker.Current()
	pos := c.target.Position()
	clamped := r.ClampWithFootprint(pos, halfOf(c.footprint))
	if clamped != pos {
		c.target.SetPosition(clamped)
	}
}

// OnPhysicsStep is a no-op for HardClamp.
func (c *HardClamp) OnPhysicsStep(float64) {}

// SpringForce pushes a rigid body back inside the bounds with a force
// proportional to how far it has left the effective rectangle.
type SpringForce struct {
	tracker   *Tracker
	body      RigidBody
	footprint Footprint
	gain      float64
	damping   float64
}

// Mode implements Policy.
func (s *SpringForce) Mode() Mode { return ModeSpring }

// OnFrame is a no-op for SpringForce.
func (s *SpringForce) OnFrame() {}

// OnPhysicsStep submits the restoring force for this step, if any.
func (s *SpringForce) OnPhysicsStep(float64) {
	if !s.tracker.Active() {
		return
	}
	r, _ := s.tracker.Current()
	f := SpringForceFor(r, s.body.Position(), s.body.Velocity(), halfOf(s.footprint), s.gain, s.damping)
	if !f.IsZero() {
		s.body.AddForce(f)
	}
}

// SpringForceFor computes the restoring force for a box centered at pos with
// half extents half. Each axis is handled on its own; inside the effective
// range the component is zero.
func SpringForceFor(r Rect, pos, vel, half core.Vec2, gain, damping float64) core.Vec2 {
	lo, hi := r.inset(half)
	return core.Vec2{
		X: axisForce(pos.X, vel.X, lo.X, hi.X, gain, damping),
		Y: axisForce(pos.Y, vel.Y, lo.Y, hi.Y, gain, damping),
	}
}

func axisForce(pos, vel, lo, hi, gain, damping float64) float64 {
	var f float64
	if pos < lo {
		f = gain * (lo - pos)
		if vel < 0 {
			f -= vel * damping
		}
	} else if pos > hi {
		f = -gain * (pos - hi)
		if vel > 0 {
			f -= vel * damping
		}
	}
	return f
}
