package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Kind represents the type of a powerup.
type Kind int

const (
	KindNone        Kind = iota // No powerup
	KindBigPaddle               // Widen paddle
	KindSmallPaddle             // Shrink paddle
	KindFastBall                // Speed up ball
	KindSlowBall                // Slow down ball
	KindFireBall                // Ball passes through bricks
	kindCount                   // Sentinel for counting types
)

// Glyph returns the display character for a powerup kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindBigPaddle:
		return 'W'
	case KindSmallPaddle:
		return 'S'
	case KindFastBall:
		return '+'
	case KindSlowBall:
		return '-'
	case KindFireBall:
		return '*'
	default:
		return '?'
	}
}

// Color returns the display color for a powerup kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindBigPaddle:
		return core.ColorBrightGreen
	case KindSmallPaddle:
		return core.ColorBrightMagenta
	case KindFastBall:
		return core.ColorBrightYellow
	case KindSlowBall:
		return core.ColorBrightCyan
	case KindFireBall:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}

// String returns the name of the powerup kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindBigPaddle:
		return "Big Paddle"
	case KindSmallPaddle:
		return "Small Paddle"
	case KindFastBall:
		return "Fast Ball"
	case KindSlowBall:
		return "Slow Ball"
	case KindFireBall:
		return "Fire Ball"
	default:
		return "?"
	}
}

// Effect is the active powerup and the seconds it has left.
type Effect struct {
	Kind      Kind
	Remaining float64
}

// Active reports whether an effect is running.
func (e Effect) Active() bool {
	return e.Kind != KindNone && e.Remaining > 0
}

// String formats the effect for the HUD, e.g. "Fast Ball 3.2s".
func (e Effect) String() string {
	if !e.Active() {
		return ""
	}
	return fmt.Sprintf("%s %.1fs", e.Kind, e.Remaining)
}

// Pickup is a falling powerup.
type Pickup struct {
	Kind Kind
	Box  core.Box
}

// PowerupManager spawns falling pickups and owns the single active effect.
// It counts the effect down in Update and reverts it on expiry.
type PowerupManager struct {
	arena   Arena
	paddle  *Paddle
	ball    *Ball
	cfg     config.BreakoutPowerups
	rng     Roller
	pickups []*Pickup
	effect  Effect
}

// NewPowerupManager creates a manager acting on the given paddle and ball.
func NewPowerupManager(arena Arena, paddle *Paddle, ball *Ball, cfg config.BreakoutPowerups, rng Roller) *PowerupManager {
	return &PowerupManager{
		arena:  arena,
		paddle: paddle,
		ball:   ball,
		cfg:    cfg,
		rng:    rng,
	}
}

// SpawnPowerup drops a random powerup from the top at a random column.
func (pm *PowerupManager) SpawnPowerup() {
	kind := Kind(1 + pm.rng.Intn(int(kindCount)-1))
	cols := core.Max(1, int(pm.arena.Width()))
	pm.pickups = append(pm.pickups, &Pickup{
		Kind: kind,
		Box: core.Box{
			X: pm.arena.Left + float64(pm.rng.Intn(cols)),
			Y: pm.arena.Top,
			W: 1,
			H: 1,
		},
	})
}

// Update counts the active effect down, then moves pickups.
// A pickup caught by the paddle replaces the active effect; a missed one is dropped.
func (pm *PowerupManager) Update(dt float64) {
	if pm.effect.Kind != KindNone {
		pm.effect.Remaining -= dt
		if pm.effect.Remaining <= 0 {
			pm.revert()
		}
	}

	paddle := pm.paddle.Box()
	active := pm.pickups[:0]
	for _, p := range pm.pickups {
		p.Box.Y += pm.cfg.FallSpeed * dt
		switch {
		case p.Box.Intersects(paddle):
			pm.activate(p.Kind)
		case p.Box.Y >= pm.arena.Bottom:
			// missed
		default:
			active = append(active, p)
		}
	}
	pm.pickups = active
}

// InEffect returns the active effect, or a zero Effect if none.
func (pm *PowerupManager) InEffect() Effect {
	return pm.effect
}

// Pickups returns the falling pickups.
func (pm *PowerupManager) Pickups() []*Pickup {
	return pm.pickups
}

func (pm *PowerupManager) activate(kind Kind) {
	pm.revert()
	switch kind {
	case KindBigPaddle:
		pm.paddle.Resize(float64(pm.cfg.SizeDelta))
	case KindSmallPaddle:
		pm.paddle.Resize(-float64(pm.cfg.SizeDelta))
	case KindFastBall:
		pm.ball.SetSpeedFactor(1 + float64(pm.cfg.SpeedPercent)/100)
	case KindSlowBall:
		pm.ball.SetSpeedFactor(1 - float64(pm.cfg.SpeedPercent)/100)
	case KindFireBall:
		pm.ball.SetFireBall(true)
	}
	pm.effect = Effect{Kind: kind, Remaining: pm.cfg.Duration}
}

func (pm *PowerupManager) revert() {
	switch pm.effect.Kind {
	case KindBigPaddle, KindSmallPaddle:
		pm.paddle.ResetWidth()
	case KindFastBall, KindSlowBall:
		pm.ball.SetSpeedFactor(1)
	case KindFireBall:
		pm.ball.SetFireBall(false)
	}
	pm.effect = Effect{}
}

// Render draws falling pickups.
func (pm *PowerupManager) Render(dst *core.Screen) {
	for _, p := range pm.pickups {
		dst.SetColor(int(p.Box.X), int(p.Box.Y), p.Kind.Glyph(), p.Kind.Color())
	}
}
