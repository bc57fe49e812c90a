package breakout

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Mode represents the game mode.
type Mode int

const (
	ModeClassic Mode = iota // Clearing the grid starts over from scratch
	ModeEndless             // Score and lives carry into a faster next level
)

// Texts shown by the coordinator.
const (
	TextWelcome       = "Welcome to Breakout!"
	TextPressStart    = "Press Enter to start."
	TextPaused        = "paused."
	TextLevelComplete = "Level completed."
	TextGameOver      = "Game over :("
	TextRestartHint   = "Press Space to continue"
)

const (
	minScreenW = 30
	minScreenH = 15

	messageSecs = 1.5
)

// Coordinator owns the game objects, drives the per-frame update/render
// cycle and moves between StartMenu, Playing, Paused, LevelComplete and
// GameOver. Owned objects report back through the Events methods.
type Coordinator struct {
	mode  Mode
	state GameState

	// Owned objects, recreated wholesale by reset
	paddle   *Paddle
	ball     *Ball
	bricks   *BrickField
	powerups *PowerupManager
	overlay  *MessagingOverlay
	display  *ScoreLivesDisplay

	// Game state
	time          float64 // Seconds of unpaused play
	score         int
	lives         int
	level         int
	finalScore    int
	pauseHold     float64 // Seconds until the pause key is read again
	levelComplete bool
	levelWait     float64 // Seconds left on the "Level completed." banner
	effect        Effect  // Read from the powerup manager each frame
	announced     Kind
	lastSpawn     float64
	frames        uint64

	masterText string
	scoreText  string

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	configured bool // cfg was supplied, skip loading in Reset
	difficulty *config.DifficultyManager
	rng        Roller

	// Layout (computed from screen size)
	arena          Arena
	screenTooSmall bool
}

// New creates a classic Breakout game.
func New() *Coordinator {
	return &Coordinator{mode: ModeClassic}
}

// NewEndless creates a Breakout game in endless mode.
func NewEndless() *Coordinator {
	return &Coordinator{mode: ModeEndless}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
// Reset falls back to the defaults if cfg does not validate.
func NewWithConfig(mode Mode, cfg config.BreakoutConfig) *Coordinator {
	return &Coordinator{mode: mode, cfg: cfg, configured: true}
}

// ID returns the unique identifier for this game.
func (c *Coordinator) ID() string {
	if c.mode == ModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (c *Coordinator) Title() string {
	if c.mode == ModeEndless {
		return "Breakout (Endless)"
	}
	return "Breakout"
}

// Reset loads configuration, lays out the arena and returns to the start menu.
func (c *Coordinator) Reset(runtime core.RuntimeConfig) {
	c.runtime = runtime

	if !c.configured {
		cfg, err := config.LoadBreakout("")
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
		c.cfg = cfg
	}
	// A config the game cannot run with is replaced by the defaults
	if err := c.cfg.Validate(); err != nil {
		c.cfg = config.DefaultBreakoutConfig()
	}

	c.difficulty = config.NewDifficultyManager(c.cfg.Difficulty)
	c.rng = NewSimpleRNG(runtime.Seed)
	c.arena = NewArena(runtime.ScreenW, runtime.ScreenH)
	c.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	c.score = 0
	c.lives = c.cfg.Gameplay.Lives
	c.level = 1
	c.finalScore = 0
	c.frames = 0
	c.reset()
	c.startMenu()
}

// carryProgress reports whether score and lives survive a cleared level.
func (c *Coordinator) carryProgress() bool {
	return c.mode == ModeEndless || c.cfg.Gameplay.CarryProgress
}

// reset drops every owned object and builds a fresh set for the current level.
func (c *Coordinator) reset() {
	c.time = 0
	c.lastSpawn = 0
	c.pauseHold = 0
	c.levelComplete = false
	c.levelWait = 0
	c.effect = Effect{}
	c.announced = KindNone

	speed := c.difficulty.Speed(c.cfg.Physics.BallSpeed, c.score, c.level)
	if limit := c.cfg.Physics.MaxBallSpeed; limit > 0 {
		speed = math.Min(speed, limit)
	}

	c.paddle = NewPaddle(c.arena, c.cfg.Paddle, c.cfg.Physics.PaddleSpeed)
	c.bricks = NewBrickField(c.arena, c.cfg.Bricks.Top, c)
	c.bricks.CreateBricks(c.cfg.Bricks.Rows, c.cfg.Bricks.Cols, c.cfg.Bricks.Width, c.cfg.Bricks.Height, c.cfg.Bricks.Spacing)
	c.ball = NewBall(c.arena, speed, c.cfg.Physics.MaxBallSpeed, c.paddle, c.bricks, c)
	c.powerups = NewPowerupManager(c.arena, c.paddle, c.ball, c.cfg.Powerups, c.rng)
	c.overlay = NewMessagingOverlay()
	c.display = NewScoreLivesDisplay(c.lives, c.level)
}

// startNewGame zeroes the score, restores lives and enters Playing.
func (c *Coordinator) startNewGame() {
	c.score = 0
	c.lives = c.cfg.Gameplay.Lives
	c.level = 1
	c.reset()
	c.state = StatePlaying
	c.masterText = ""
	c.scoreText = strconv.Itoa(c.score)
}

// nextLevel follows a cleared grid. Classic mode starts over; endless mode
// keeps score and lives and moves up a level.
func (c *Coordinator) nextLevel() {
	if !c.carryProgress() {
		c.startNewGame()
		return
	}
	c.level++
	c.reset()
	c.state = StatePlaying
	c.masterText = ""
	c.scoreText = strconv.Itoa(c.score)
	c.overlay.Post(fmt.Sprintf("Level %d", c.level), messageSecs)
}

func (c *Coordinator) gameOver() {
	c.state = StateGameOver
	c.masterText = TextGameOver
	c.scoreText = fmt.Sprintf("Your score was : %d", c.finalScore)
}

func (c *Coordinator) startMenu() {
	c.state = StateStartMenu
	c.masterText = TextWelcome
	c.scoreText = TextPressStart
}

func (c *Coordinator) togglePause() {
	if c.state == StatePaused {
		c.state = StatePlaying
		c.masterText = ""
	} else {
		c.state = StatePaused
		c.masterText = TextPaused
	}
	c.pauseHold = c.cfg.Gameplay.PauseBuffer
}

// Step advances the game by dt seconds.
func (c *Coordinator) Step(dt float64, kb core.Keyboard) core.StepResult {
	if c.screenTooSmall {
		return core.StepResult{Status: c.Status()}
	}
	c.Update(dt, kb)
	c.frames++
	return core.StepResult{Status: c.Status()}
}

// Update runs one frame of the state machine.
func (c *Coordinator) Update(dt float64, kb core.Keyboard) {
	c.effect = c.powerups.InEffect()
	c.display.UpdatePowerupText(c.effect)
	if c.effect.Kind != c.announced {
		if c.effect.Kind != KindNone {
			c.overlay.Post(c.effect.Kind.String()+"!", messageSecs)
		}
		c.announced = c.effect.Kind
	}

	switch c.state {
	case StateStartMenu:
		if kb.Held(core.ActionConfirm) {
			c.startNewGame()
		}
		return
	case StateGameOver:
		if kb.Held(core.ActionRestart) {
			c.startMenu()
		}
		return
	case StateLevelComplete:
		c.levelWait -= dt
		if c.levelWait <= 0 || kb.Held(core.ActionConfirm) {
			c.nextLevel()
		}
		return
	}

	// Playing or Paused from here on
	if c.lives <= 0 {
		c.finalScore = c.score
		c.gameOver()
		return
	}
	if c.levelComplete {
		c.levelComplete = false
		c.state = StateLevelComplete
		c.levelWait = c.cfg.Gameplay.LevelCompleteDelay
		c.masterText = TextLevelComplete
		return
	}

	if c.pauseHold > 0 {
		c.pauseHold -= dt
	}
	if kb.Held(core.ActionPause) && c.pauseHold <= 0 {
		c.togglePause()
	}
	if c.state == StatePaused {
		return
	}

	c.time += dt

	if c.time > c.lastSpawn+c.cfg.Powerups.Frequency && c.rng.Intn(c.cfg.Powerups.SpawnOneIn) == 0 {
		c.powerups.SpawnPowerup()
		c.lastSpawn = c.time
	}

	if kb.Held(core.ActionLeft) {
		c.paddle.MoveLeft(dt)
	}
	if kb.Held(core.ActionRight) {
		c.paddle.MoveRight(dt)
	}

	c.paddle.Update(dt)
	c.ball.Update(dt)
	c.powerups.Update(dt)
	c.overlay.Update(dt)
}

// LoseLife takes one life. Lives are not clamped; the next frame ends the game at zero.
func (c *Coordinator) LoseLife() {
	c.lives--
	c.display.LifeLost(c.lives)
	if c.lives > 0 {
		c.overlay.Post("Ball lost!", messageSecs)
	}
}

// IncreaseScore adds one brick's worth of points.
func (c *Coordinator) IncreaseScore() {
	c.score += c.cfg.Gameplay.PointsPerBrick
	c.scoreText = strconv.Itoa(c.score)
}

// LevelComplete flags the grid as cleared; the next frame acts on it.
func (c *Coordinator) LevelComplete() {
	c.levelComplete = true
}

var _ Events = (*Coordinator)(nil)

// Render draws the current frame. Gameplay objects are drawn only in game;
// the banner and score texts are drawn on top in every state.
func (c *Coordinator) Render(dst *core.Screen) {
	dst.Clear()

	if c.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	inGame := c.state == StatePlaying || c.state == StatePaused
	switch c.state {
	case StatePlaying, StatePaused:
		c.renderBorder(dst)
		c.bricks.Render(dst)
		c.powerups.Render(dst)
		c.paddle.Render(dst)
		c.ball.Render(dst)
		c.display.Render(dst)
		c.overlay.Render(dst)
	case StateStartMenu:
		renderBanner(dst, dst.Height()/2-2)
	}

	if c.masterText != "" {
		dst.DrawTextCenteredColor(dst.Height()/2-1, c.masterText, core.ColorBrightYellow)
	}
	if inGame {
		text := "Score: " + c.scoreText
		dst.DrawTextColor(dst.Width()-len(text)-1, 0, text, core.ColorBrightYellow)
		return
	}
	dst.DrawTextCenteredColor(dst.Height()/2+1, c.scoreText, core.ColorBrightYellow)
	if c.state == StateGameOver {
		dst.DrawTextCenteredColor(dst.Height()/2+3, TextRestartHint, core.ColorGray)
	}
}

// renderBorder draws the top border row and both side walls.
func (c *Coordinator) renderBorder(dst *core.Screen) {
	top := int(c.arena.Top) - 1
	right := int(c.arena.Right)
	dst.SetColor(0, top, BorderTL, core.ColorGray)
	dst.SetColor(right, top, BorderTR, core.ColorGray)
	dst.DrawHLine(1, top, right-1, BorderHoriz, core.ColorGray)
	for y := top + 1; y < dst.Height(); y++ {
		dst.SetColor(0, y, BorderVert, core.ColorGray)
		dst.SetColor(right, y, BorderVert, core.ColorGray)
	}
}

// Status returns the platform-facing summary.
func (c *Coordinator) Status() core.Status {
	score := c.score
	if c.state == StateGameOver {
		score = c.finalScore
	}
	return core.Status{
		Phase:    c.state.String(),
		Score:    score,
		GameOver: c.state == StateGameOver,
		Paused:   c.state == StatePaused,
	}
}

// State returns the current state machine state.
func (c *Coordinator) State() GameState { return c.state }

// Mode returns the game mode.
func (c *Coordinator) Mode() Mode { return c.mode }

// Score returns the running score.
func (c *Coordinator) Score() int { return c.score }

// FinalScore returns the score captured when the game ended.
func (c *Coordinator) FinalScore() int { return c.finalScore }

// Lives returns the remaining lives.
func (c *Coordinator) Lives() int { return c.lives }

// Level returns the 1-based level number.
func (c *Coordinator) Level() int { return c.level }

// Time returns seconds of unpaused play in the current level.
func (c *Coordinator) Time() float64 { return c.time }

// ScoreText returns the score line as drawn.
func (c *Coordinator) ScoreText() string { return c.scoreText }

// MessageText returns the banner text as drawn.
func (c *Coordinator) MessageText() string { return c.masterText }

// Config returns the configuration in use.
func (c *Coordinator) Config() config.BreakoutConfig { return c.cfg }

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_endless", func() registry.Game {
		return NewEndless()
	})
}
