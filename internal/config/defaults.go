package config

import (
	_ "embed"
)

//go:embed defaults/kickball.yaml
var defaultKickballYAML []byte

// DefaultKickballConfig returns the default kickball configuration.
func DefaultKickballConfig() KickballConfig {
	return KickballConfig{
		Field: KickballField{
			UnitsX:          4,
			UnitsY:          2,
			PhysicsSubsteps: 1,
		},
		Bounds: KickballBounds{
			Enabled: true,
			Padding: 0,
		},
		Ball: KickballBall{
			Mass:       1,
			Radius:     0.5,
			KickForce:  900,
			DampFactor: 0.98,
			RollFactor: 0.995,
			StopSpeed:  0.1,
			Boundary: BoundaryPolicy{
				Mode:          "spring",
				UseFootprint:  true,
				BoundaryForce: 50,
				DampingForce:  10,
			},
		},
		Player: KickballPlayer{
			MoveSpeed:             5,
			Radius:                0.5,
			KickReach:             1.5,
			UseBoundaryConstraint: true,
			Boundary: BoundaryPolicy{
				Mode:          "clamp",
				UseFootprint:  true,
				BoundaryForce: 50,
				DampingForce:  10,
			},
		},
		Goals: KickballGoals{
			Depth:  0.75,
			Height: 5,
		},
		Gameplay: KickballGameplay{
			WinScore:        5,
			ServeDelayTicks: 45,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				GoalShrink:      0.4,
			},
		},
	}
}
