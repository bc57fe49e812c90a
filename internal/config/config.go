// Package config provides YAML-based game configuration loading and
// difficulty management for the breakout game.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Powerups   BreakoutPowerups `yaml:"powerups"`
	Physics    BreakoutPhysics  `yaml:"physics"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutGameplay defines scoring, lives and state-machine timing.
type BreakoutGameplay struct {
	Lives              int     `yaml:"lives"`
	PointsPerBrick     int     `yaml:"points_per_brick"`
	PauseBuffer        float64 `yaml:"pause_buffer"`         // Seconds a pause toggle locks out the next one
	LevelCompleteDelay float64 `yaml:"level_complete_delay"` // Seconds the "Level completed." banner stays up
	CarryProgress      bool    `yaml:"carry_progress"`       // Keep score and lives across levels
}

// BreakoutPowerups defines powerup spawning and effects.
type BreakoutPowerups struct {
	Frequency    float64 `yaml:"frequency"`     // Minimum seconds of play between spawns
	SpawnOneIn   int     `yaml:"spawn_one_in"`  // Per-frame odds once Frequency has elapsed
	Duration     float64 `yaml:"duration"`      // Seconds an effect stays active
	FallSpeed    float64 `yaml:"fall_speed"`    // Cells per second
	SizeDelta    int     `yaml:"size_delta"`    // Cells added/removed by big/small paddle
	SpeedPercent int     `yaml:"speed_percent"` // Ball speed change for fast/slow ball
}

// BreakoutPhysics defines movement speeds in cells per second.
type BreakoutPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
}

// BreakoutBricks defines the brick grid. A zero Width fits the grid to the screen.
type BreakoutBricks struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Spacing float64 `yaml:"spacing"`
	Top     int     `yaml:"top"` // Screen row of the first brick row
}

// BreakoutPaddle defines paddle parameters.
type BreakoutPaddle struct {
	Width    int `yaml:"width"`
	MinWidth int `yaml:"min_width"`
	MaxWidth int `yaml:"max_width"`
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
	Type  string `yaml:"type"`   // "score", "level", or "none"
	MaxAt int    `yaml:"max_at"` // Score/level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Empty input yields an empty preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports configuration values the game cannot run with.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, errors.New("gameplay.lives must be positive"))
	}
	if c.Gameplay.PauseBuffer < 0 {
		errs = append(errs, errors.New("gameplay.pause_buffer must not be negative"))
	}
	if c.Powerups.SpawnOneIn <= 0 {
		errs = append(errs, errors.New("powerups.spawn_one_in must be positive"))
	}
	if c.Powerups.Duration <= 0 {
		errs = append(errs, errors.New("powerups.duration must be positive"))
	}
	if c.Physics.BallSpeed <= 0 || c.Physics.PaddleSpeed <= 0 {
		errs = append(errs, errors.New("physics speeds must be positive"))
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 || c.Bricks.Height <= 0 {
		errs = append(errs, errors.New("bricks.rows, bricks.cols and bricks.height must be positive"))
	}
	if c.Paddle.Width <= 0 {
		errs = append(errs, errors.New("paddle.width must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid breakout config: %w", err)
	}
	return nil
}
