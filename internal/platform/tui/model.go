package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// maxFrameGap caps dt after a stall so objects do not tunnel.
const maxFrameGap = 100 * time.Millisecond

// ScoreSaver persists finished games. *storage.Store implements it.
type ScoreSaver interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
}

// highScorer is implemented by stores that can report the best score so far.
type highScorer interface {
	HighScore(gameID string) (int, error)
}

// leveler is implemented by games that report the level reached.
type leveler interface {
	Level() int
}

// Model is the Bubble Tea model for running a breakout game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    ScoreSaver
	config   core.RuntimeConfig
	keys     *KeyMapper
	held     *HeldKeys
	logger   *log.Logger
	player   string
	status   core.Status
	lastTick time.Time
	loop     uint64

	quitting   bool
	back       bool // Left for the mode selector instead of quitting
	scoreSaved bool // Whether score has been saved for current game over
	relayout   bool // Screen size changed at game over, reset once it is left
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPlayer records scores under the given player name.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithLogger sets the logger for phase changes and score saves.
func WithLogger(logger *log.Logger) ModelOption {
	return func(m *Model) { m.logger = logger }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store ScoreSaver, cfg core.RuntimeConfig, opts ...ModelOption) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := &Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		held:   NewHeldKeys(DefaultHoldWindow),
		logger: log.Default(),
		player: storage.DefaultPlayer,
		loop:   nextTickLoop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.game.Reset(m.config)
	m.status = m.game.Status()
	return m
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey records the press for the next tick. Quit, screenshot and
// leaving for the menu are handled here.
func (m *Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game unless a round is in progress.
	if action == core.ActionBack && !m.inRound() {
		m.back = true
		return m, tea.Quit
	}

	m.held.Press(action, now)
	return m, nil
}

// inRound reports whether a level is being played.
func (m *Model) inRound() bool {
	return m.status.Phase == "Playing" || m.status.Phase == "LevelComplete"
}

// handleResize processes window resize events.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The layout depends on the screen size, so the game restarts
	// at its start menu. A finished game keeps its score on screen
	// and is laid out again when the player leaves it.
	if m.status.GameOver {
		m.relayout = true
		return m, nil
	}
	m.relayout = false
	m.game.Reset(m.config)
	m.status = m.game.Status()
	m.held.Release()
	m.logger.Debug("screen resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick advances the game by the time since the previous tick.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.advance(now)
	return m, tickCmd(m.config.TickRate, m.loop)
}

// advance runs one simulation step at now.
func (m *Model) advance(now time.Time) {
	dt := m.config.FrameDuration()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
		if dt < 0 {
			dt = 0
		}
		if dt > maxFrameGap {
			dt = maxFrameGap
		}
	}
	m.lastTick = now

	prev := m.status
	result := m.game.Step(dt.Seconds(), m.held.Frame(now))
	m.status = result.Status

	if prev.Phase != m.status.Phase {
		m.logger.Debug("phase changed", "game", m.game.ID(), "from", prev.Phase, "to", m.status.Phase)
	}

	if !m.status.GameOver {
		m.scoreSaved = false
		if m.relayout {
			m.relayout = false
			m.game.Reset(m.config)
			m.status = m.game.Status()
			m.logger.Debug("screen relaid out", "width", m.config.ScreenW, "height", m.config.ScreenH)
		}
		return
	}

	// Save score on game over (once)
	if !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
}

// saveScore records the finished game. Zero scores are not kept.
func (m *Model) saveScore() {
	if m.store == nil || m.status.Score <= 0 {
		return
	}

	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.status.Score,
	}
	if l, ok := m.game.(leveler); ok {
		entry.Level = l.Level()
	}

	best := -1
	if hs, ok := m.store.(highScorer); ok {
		if b, err := hs.HighScore(entry.GameID); err == nil {
			best = b
		}
	}

	id, err := m.store.SaveScore(entry)
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Error("failed to save score", "game", entry.GameID, "err", err)
		return
	}
	m.logger.Info("score saved", "id", id, "game", entry.GameID, "player", entry.Player,
		"score", entry.Score, "level", entry.Level)
	if best >= 0 && entry.Score > best {
		m.logger.Info("new high score", "game", entry.GameID, "player", entry.Player,
			"score", entry.Score, "previous", best)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Status returns the game status as of the last tick.
func (m *Model) Status() core.Status {
	return m.status
}

// WentBack reports whether the player left for the mode selector.
func (m *Model) WentBack() bool {
	return m.back
}

// Quitting reports whether the player asked to quit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the player went back to the mode selector.
func Run(game registry.Game, store ScoreSaver, cfg core.RuntimeConfig, opts ...ModelOption) (bool, error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return false, err
	}
	return model.WentBack(), nil
}
