package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const (
	// respawnDelay is how long a new ball rests on the paddle before launching.
	respawnDelay = 1.0
	// maxBounceAngle is the steepest paddle deflection, measured from vertical.
	maxBounceAngle = math.Pi / 3
	// maxStep caps how far the ball travels per collision check, in cells.
	maxStep = 0.5
)

// Ball moves at a constant speed and bounces off walls, the paddle and bricks.
// Falling past the bottom raises LoseLife and the ball respawns on the paddle.
type Ball struct {
	box      core.Box
	dirX     float64 // Unit direction
	dirY     float64
	speed    float64
	factor   float64 // Powerup multiplier on speed
	maxSpeed float64
	fireBall bool
	resting  float64 // Seconds left resting on the paddle

	arena  Arena
	paddle *Paddle
	bricks *BrickField
	events Events
}

// NewBall creates a ball resting on the paddle, ready to launch.
func NewBall(arena Arena, speed, maxSpeed float64, paddle *Paddle, bricks *BrickField, events Events) *Ball {
	b := &Ball{
		box:      core.Box{W: 1, H: 1},
		speed:    speed,
		factor:   1,
		maxSpeed: maxSpeed,
		arena:    arena,
		paddle:   paddle,
		bricks:   bricks,
		events:   events,
	}
	b.rest()
	return b
}

// Box returns the ball's bounds.
func (b *Ball) Box() core.Box {
	return b.box
}

// Velocity returns the current velocity in cells per second.
func (b *Ball) Velocity() (vx, vy float64) {
	s := b.Speed()
	return b.dirX * s, b.dirY * s
}

// Speed returns the effective speed including any powerup factor.
func (b *Ball) Speed() float64 {
	s := b.speed * b.factor
	if b.maxSpeed > 0 && s > b.maxSpeed {
		s = b.maxSpeed
	}
	return s
}

// SetSpeedFactor scales the ball speed; 1 restores the base speed.
func (b *Ball) SetSpeedFactor(f float64) {
	if f <= 0 {
		f = 1
	}
	b.factor = f
}

// SetFireBall toggles passing through bricks.
func (b *Ball) SetFireBall(on bool) {
	b.fireBall = on
}

// FireBall reports whether the ball passes through bricks.
func (b *Ball) FireBall() bool {
	return b.fireBall
}

// Resting reports whether the ball is waiting on the paddle.
func (b *Ball) Resting() bool {
	return b.resting > 0
}

// rest parks the ball on top of the paddle.
func (b *Ball) rest() {
	b.resting = respawnDelay
	b.dirX, b.dirY = 0, 0
	b.follow()
}

func (b *Ball) follow() {
	p := b.paddle.Box()
	b.box.X = p.CenterX() - b.box.W/2
	b.box.Y = p.Y - b.box.H
}

// launch sends the ball upward with a slight lean to the right.
func (b *Ball) launch() {
	b.resting = 0
	angle := maxBounceAngle / 3
	b.dirX = math.Sin(angle)
	b.dirY = -math.Cos(angle)
}

// Update advances the ball by dt seconds in substeps of at most maxStep cells.
func (b *Ball) Update(dt float64) {
	if b.resting > 0 {
		b.follow()
		b.resting -= dt
		if b.resting <= 0 {
			b.launch()
		}
		return
	}

	dist := b.Speed() * dt
	steps := int(math.Ceil(dist / maxStep))
	if steps < 1 {
		steps = 1
	}
	sub := dt / float64(steps)
	for i := 0; i < steps; i++ {
		if !b.step(sub) {
			return
		}
	}
}

// step moves once and resolves collisions. Returns false if the ball was lost.
func (b *Ball) step(dt float64) bool {
	vx, vy := b.Velocity()
	b.box.X += vx * dt
	b.box.Y += vy * dt

	// Walls
	if b.box.X < b.arena.Left {
		b.box.X = b.arena.Left
		b.dirX = math.Abs(b.dirX)
	}
	if b.box.Right() > b.arena.Right {
		b.box.X = b.arena.Right - b.box.W
		b.dirX = -math.Abs(b.dirX)
	}
	if b.box.Y < b.arena.Top {
		b.box.Y = b.arena.Top
		b.dirY = math.Abs(b.dirY)
	}
	if b.box.Bottom() > b.arena.Bottom {
		b.events.LoseLife()
		b.rest()
		return false
	}

	// Paddle, only while moving down so the ball cannot stick inside it
	if p := b.paddle.Box(); b.dirY > 0 && b.box.Intersects(p) {
		b.box.Y = p.Y - b.box.H
		offset := core.ClampF((b.box.CenterX()-p.CenterX())/(p.W/2), -1, 1)
		angle := offset * maxBounceAngle
		b.dirX = math.Sin(angle)
		b.dirY = -math.Cos(angle)
		return true
	}

	// Bricks
	if b.bricks == nil {
		return true
	}
	hit, ok := b.bricks.Collide(b.box)
	if ok && !b.fireBall {
		b.bounceOff(hit)
	}
	return true
}

// bounceOff reflects along the axis of least penetration.
func (b *Ball) bounceOff(o core.Box) {
	overlapX := math.Min(b.box.Right(), o.Right()) - math.Max(b.box.X, o.X)
	overlapY := math.Min(b.box.Bottom(), o.Bottom()) - math.Max(b.box.Y, o.Y)
	if overlapX < overlapY {
		if b.box.CenterX() < o.CenterX() {
			b.box.X -= overlapX
			b.dirX = -math.Abs(b.dirX)
		} else {
			b.box.X += overlapX
			b.dirX = math.Abs(b.dirX)
		}
		return
	}
	if b.box.Y < o.Y {
		b.box.Y -= overlapY
		b.dirY = -math.Abs(b.dirY)
	} else {
		b.box.Y += overlapY
		b.dirY = math.Abs(b.dirY)
	}
}

// Render draws the ball; red while it is a fireball.
func (b *Ball) Render(dst *core.Screen) {
	c := core.ColorBrightWhite
	if b.fireBall {
		c = core.ColorBrightRed
	}
	dst.SetColor(int(b.box.X+0.5), int(b.box.Y), BallChar, c)
}
