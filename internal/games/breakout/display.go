package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const heart = '♥'

// ScoreLivesDisplay is the HUD row: lives, level and the active powerup.
// The score itself is drawn by the coordinator's score text.
type ScoreLivesDisplay struct {
	lives       int
	level       int
	powerupText string
	powerupKind Kind
}

// NewScoreLivesDisplay creates a display for the given lives and level.
func NewScoreLivesDisplay(lives, level int) *ScoreLivesDisplay {
	return &ScoreLivesDisplay{lives: lives, level: level}
}

// UpdatePowerupText refreshes the powerup label from the active effect.
func (d *ScoreLivesDisplay) UpdatePowerupText(e Effect) {
	d.powerupText = e.String()
	d.powerupKind = e.Kind
}

// LifeLost records the new lives count.
func (d *ScoreLivesDisplay) LifeLost(lives int) {
	d.lives = lives
}

// Lives returns the lives count shown.
func (d *ScoreLivesDisplay) Lives() int {
	return d.lives
}

// PowerupText returns the powerup label shown.
func (d *ScoreLivesDisplay) PowerupText() string {
	return d.powerupText
}

// Render draws the HUD on row 0.
func (d *ScoreLivesDisplay) Render(dst *core.Screen) {
	lives := strings.Repeat(string(heart), core.Max(0, d.lives))
	dst.DrawTextColor(1, 0, lives, core.ColorBrightRed)
	dst.DrawText(1+core.Max(0, d.lives)+1, 0, fmt.Sprintf("Level %d", d.level))

	if d.powerupText != "" {
		dst.DrawTextCenteredColor(0, d.powerupText, d.powerupKind.Color())
	}
}
