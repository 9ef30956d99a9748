// Package config provides YAML-based game configuration loading and
// difficulty management for the kickball platform.
package config

import (
	"errors"
	"fmt"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/bounds"
)

// ErrSpringNeedsPhysics is returned when the player uses a spring boundary
// without physics movement. Kinematic movement never integrates forces.
var ErrSpringNeedsPhysics = errors.New("spring boundary requires use_physics_movement")

// KickballConfig contains all configuration for the kickball game.
type KickballConfig struct {
	Field      KickballField    `yaml:"field"`
	Bounds     KickballBounds   `yaml:"bounds"`
	Ball       KickballBall     `yaml:"ball"`
	Player     KickballPlayer   `yaml:"player"`
	Goals      KickballGoals    `yaml:"goals"`
	Gameplay   KickballGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// KickballField defines how the world maps onto the host screen.
type KickballField struct {
	UnitsX          float64 `yaml:"units_x"`          // Screen units per world unit, horizontally
	UnitsY          float64 `yaml:"units_y"`          // Screen units per world unit, vertically
	PhysicsSubsteps int     `yaml:"physics_substeps"` // Physics steps per tick
}

// KickballBounds configures the viewport bounds tracker.
type KickballBounds struct {
	Enabled    bool    `yaml:"enabled"`
	Padding    float64 `yaml:"padding"`     // World units added around the visible area
	AllowInset bool    `yaml:"allow_inset"` // Permit negative padding
}

// BoundaryPolicy configures how an entity is kept inside the bounds.
type BoundaryPolicy struct {
	Mode          string  `yaml:"mode"` // "clamp" or "spring"
	UseFootprint  bool    `yaml:"use_footprint"`
	BoundaryForce float64 `yaml:"boundary_force"`
	DampingForce  float64 `yaml:"damping_force"`
}

// PolicyConfig converts the YAML form into a bounds.PolicyConfig.
func (p BoundaryPolicy) PolicyConfig() (bounds.PolicyConfig, error) {
	mode, err := bounds.ParseMode(p.Mode)
	if err != nil {
		return bounds.PolicyConfig{}, err
	}
	return bounds.PolicyConfig{
		Mode:              mode,
		UseFootprint:      p.UseFootprint,
		BoundaryForceGain: p.BoundaryForce,
		DampingForceGain:  p.DampingForce,
	}, nil
}

// KickballBall defines ball physics.
type KickballBall struct {
	Mass       float64        `yaml:"mass"`
	Radius     float64        `yaml:"radius"`      // Footprint half extent in world units
	KickForce  float64        `yaml:"kick_force"`  // Force of a single kick
	DampFactor float64        `yaml:"damp_factor"` // Velocity multiplier every physics step
	RollFactor float64        `yaml:"roll_factor"` // Extra multiplier while above stop speed
	StopSpeed  float64        `yaml:"stop_speed"`  // Speed below which the ball stops
	Boundary   BoundaryPolicy `yaml:"boundary"`
}

// KickballPlayer defines the player-controlled character.
type KickballPlayer struct {
	MoveSpeed             float64        `yaml:"move_speed"` // World units per second
	Radius                float64        `yaml:"radius"`
	KickReach             float64        `yaml:"kick_reach"` // Max center distance for a keyboard kick
	UsePhysicsMovement    bool           `yaml:"use_physics_movement"`
	UseBoundaryConstraint bool           `yaml:"use_boundary_constraint"`
	Boundary              BoundaryPolicy `yaml:"boundary"`
}

// NeedsPhysicsFallback reports whether a constrained player would run the
// given boundary mode without physics movement to consume its forces.
func (p KickballPlayer) NeedsPhysicsFallback(mode bounds.Mode) bool {
	return p.UseBoundaryConstraint && mode == bounds.ModeSpring && !p.UsePhysicsMovement
}

// KickballGoals defines both goal mouths.
type KickballGoals struct {
	Depth  float64 `yaml:"depth"`  // Trigger width from the field edge
	Height float64 `yaml:"height"` // Mouth height at difficulty 0
}

// KickballGameplay defines match rules.
type KickballGameplay struct {
	WinScore        int `yaml:"win_score"`         // Goals to win, ignored in endless mode
	ServeDelayTicks int `yaml:"serve_delay_ticks"` // Pause before the ball is served again
}

// Validate reports configuration mistakes that would break the simulation.
func (c KickballConfig) Validate() error {
	var errs []error
	if c.Field.UnitsX <= 0 || c.Field.UnitsY <= 0 {
		errs = append(errs, fmt.Errorf("field: units must be positive, got %v x %v", c.Field.UnitsX, c.Field.UnitsY))
	}
	if c.Field.PhysicsSubsteps < 1 {
		errs = append(errs, fmt.Errorf("field: physics_substeps must be >= 1, got %d", c.Field.PhysicsSubsteps))
	}
	if c.Ball.Mass <= 0 {
		errs = append(errs, fmt.Errorf("ball: mass must be positive, got %v", c.Ball.Mass))
	}
	if c.Ball.Radius < 0 || c.Player.Radius < 0 {
		errs = append(errs, errors.New("radius must not be negative"))
	}
	if c.Player.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("player: move_speed must not be negative, got %v", c.Player.MoveSpeed))
	}
	if c.Goals.Height <= 0 || c.Goals.Depth <= 0 {
		errs = append(errs, errors.New("goals: depth and height must be positive"))
	}
	if _, err := c.Ball.Boundary.PolicyConfig(); err != nil {
		errs = append(errs, fmt.Errorf("ball: %w", err))
	}
	if pc, err := c.Player.Boundary.PolicyConfig(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	} else if c.Player.NeedsPhysicsFallback(pc.Mode) {
		errs = append(errs, fmt.Errorf("player: %w", ErrSpringNeedsPhysics))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid kickball config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Kick strength added at max difficulty
	GoalShrink      float64 `yaml:"goal_shrink"`      // Fraction of the goal mouth removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
