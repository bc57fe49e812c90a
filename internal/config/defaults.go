package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// Kept in sync with defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Gameplay: BreakoutGameplay{
			Lives:              3,
			PointsPerBrick:     10,
			PauseBuffer:        0.5,
			LevelCompleteDelay: 2.0,
			CarryProgress:      false,
		},
		Powerups: BreakoutPowerups{
			Frequency:    7.5,
			SpawnOneIn:   700,
			Duration:     6.0,
			FallSpeed:    8.0,
			SizeDelta:    4,
			SpeedPercent: 40,
		},
		Physics: BreakoutPhysics{
			BallSpeed:    20.0,
			PaddleSpeed:  45.0,
			MaxBallSpeed: 45.0,
		},
		Bricks: BreakoutBricks{
			Rows:    5,
			Cols:    10,
			Width:   0,
			Height:  1,
			Spacing: 1,
			Top:     3,
		},
		Paddle: BreakoutPaddle{
			Width:    10,
			MinWidth: 4,
			MaxWidth: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
			},
		},
	}
}

// DefaultBreakoutYAML returns the embedded default YAML.
func DefaultBreakoutYAML() []byte {
	return defaultBreakoutYAML
}
