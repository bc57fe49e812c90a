package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	BrickChar   = '█'
	BorderVert  = '│'
	BorderHoriz = '─'
	BorderTL    = '┌'
	BorderTR    = '┐'
)

// Arena is the playable area inside the borders, in cells.
// Row 0 holds the HUD and row 1 the top border.
type Arena struct {
	Left, Top, Right, Bottom float64
}

// NewArena computes the arena for a screen of the given size.
func NewArena(screenW, screenH int) Arena {
	return Arena{
		Left:   1,
		Top:    2,
		Right:  float64(screenW - 1),
		Bottom: float64(screenH),
	}
}

// Width returns the horizontal extent of the arena.
func (a Arena) Width() float64 {
	return a.Right - a.Left
}

// Paddle is the player's bat, moved sideways along the bottom row.
type Paddle struct {
	box       core.Box
	speed     float64
	baseWidth float64
	minWidth  float64
	maxWidth  float64
	arena     Arena
}

// NewPaddle creates a paddle centered on the row just above the bottom edge.
func NewPaddle(arena Arena, cfg config.BreakoutPaddle, speed float64) *Paddle {
	w := float64(cfg.Width)
	p := &Paddle{
		box: core.Box{
			X: arena.Left + (arena.Width()-w)/2,
			Y: arena.Bottom - 2,
			W: w,
			H: 1,
		},
		speed:     speed,
		baseWidth: w,
		minWidth:  float64(cfg.MinWidth),
		maxWidth:  float64(cfg.MaxWidth),
		arena:     arena,
	}
	if p.minWidth <= 0 {
		p.minWidth = 1
	}
	if p.maxWidth < p.minWidth {
		p.maxWidth = arena.Width()
	}
	return p
}

// Box returns the paddle's bounds.
func (p *Paddle) Box() core.Box {
	return p.box
}

// MoveLeft moves the paddle left for dt seconds.
func (p *Paddle) MoveLeft(dt float64) {
	p.box.X -= p.speed * dt
	p.clamp()
}

// MoveRight moves the paddle right for dt seconds.
func (p *Paddle) MoveRight(dt float64) {
	p.box.X += p.speed * dt
	p.clamp()
}

// Resize changes the width by delta cells around the current center.
func (p *Paddle) Resize(delta float64) {
	p.setWidth(p.box.W + delta)
}

// ResetWidth restores the width the paddle was created with.
func (p *Paddle) ResetWidth() {
	p.setWidth(p.baseWidth)
}

func (p *Paddle) setWidth(w float64) {
	center := p.box.CenterX()
	p.box.W = core.ClampF(w, p.minWidth, core.ClampF(p.maxWidth, p.minWidth, p.arena.Width()))
	p.box.X = center - p.box.W/2
	p.clamp()
}

// Update keeps the paddle inside the arena. Movement itself is input-driven.
func (p *Paddle) Update(_ float64) {
	p.clamp()
}

func (p *Paddle) clamp() {
	p.box.X = core.ClampF(p.box.X, p.arena.Left, p.arena.Right-p.box.W)
}

// Render draws the paddle.
func (p *Paddle) Render(dst *core.Screen) {
	r := p.box.Cells()
	dst.DrawHLine(r.X, r.Y, r.W, PaddleChar, core.ColorBrightWhite)
}
