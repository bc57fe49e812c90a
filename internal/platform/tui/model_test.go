package tui

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// fakeGame records what the platform feeds it.
type fakeGame struct {
	status core.Status
	level  int
	resets int
	steps  []float64
	left   []bool
}

func newFakeGame() *fakeGame {
	return &fakeGame{status: core.Status{Phase: "StartMenu"}, level: 1}
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, g.status.Phase) }
func (g *fakeGame) Status() core.Status      { return g.status }
func (g *fakeGame) Level() int               { return g.level }
func (g *fakeGame) Step(dt float64, kb core.Keyboard) core.StepResult {
	g.steps = append(g.steps, dt)
	g.left = append(g.left, kb.Held(core.ActionLeft))
	return core.StepResult{Status: g.status}
}

// recordingSaver keeps saved entries in memory.
type recordingSaver struct {
	entries []storage.ScoreEntry
	err     error
}

func (s *recordingSaver) SaveScore(e storage.ScoreEntry) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.entries = append(s.entries, e)
	return int64(len(s.entries)), nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestModel(g *fakeGame, saver ScoreSaver) *Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1}
	return NewModel(g, saver, cfg, WithPlayer("alice"), WithLogger(quietLogger()))
}

func TestModelResetsGameOnCreate(t *testing.T) {
	g := newFakeGame()
	m := newTestModel(g, nil)

	assert.Equal(t, 1, g.resets)
	assert.Equal(t, "StartMenu", m.Status().Phase)
	assert.NotNil(t, m.Init())
}

func TestModelFrameDelta(t *testing.T) {
	g := newFakeGame()
	m := newTestModel(g, nil)
	t0 := time.Unix(1000, 0)

	m.advance(t0)
	m.advance(t0.Add(20 * time.Millisecond))
	m.advance(t0.Add(2 * time.Second))
	m.advance(t0.Add(time.Second))

	require.Len(t, g.steps, 4)
	assert.InDelta(t, 1.0/60, g.steps[0], 1e-9, "first frame uses the nominal rate")
	assert.InDelta(t, 0.02, g.steps[1], 1e-9)
	assert.InDelta(t, 0.1, g.steps[2], 1e-9, "stalls are capped")
	assert.InDelta(t, 0.0, g.steps[3], 1e-9, "clock going backwards")
}

func TestModelHeldKeysReachGame(t *testing.T) {
	g := newFakeGame()
	m := newTestModel(g, nil)
	t0 := time.Unix(1000, 0)

	m.handleKey(runeKey('a'), t0)
	m.advance(t0.Add(10 * time.Millisecond))
	m.advance(t0.Add(time.Second))

	require.Len(t, g.left, 2)
	assert.True(t, g.left[0])
	assert.False(t, g.left[1], "released after the hold window")
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := newFakeGame()
	m := newTestModel(g, nil)

	_, cmd := m.Update(TickMsg{Time: time.Unix(1000, 0), loop: m.loop + 1})
	assert.Nil(t, cmd)
	assert.Empty(t, g.steps)

	_, cmd = m.Update(TickMsg{Time: time.Unix(1000, 0), loop: m.loop})
	assert.NotNil(t, cmd)
	assert.Len(t, g.steps, 1)
}

func TestModelSavesScoreOnce(t *testing.T) {
	g := newFakeGame()
	saver := &recordingSaver{}
	m := newTestModel(g, saver)
	t0 := time.Unix(1000, 0)

	g.status = core.Status{Phase: "GameOver", Score: 120, GameOver: true}
	g.level = 3
	m.advance(t0)
	m.advance(t0.Add(time.Second))

	require.Len(t, saver.entries, 1)
	assert.Equal(t, storage.ScoreEntry{GameID: "fake", Player: "alice", Score: 120, Level: 3}, saver.entries[0])

	// A new game over after restarting is saved again
	g.status = core.Status{Phase: "StartMenu"}
	m.advance(t0.Add(2 * time.Second))
	g.status = core.Status{Phase: "GameOver", Score: 40, GameOver: true}
	m.advance(t0.Add(3 * time.Second))

	require.Len(t, saver.entries, 2)
	assert.Equal(t, 40, saver.entries[1].Score)
}

func TestModelSkipsZeroScores(t *testing.T) {
	g := newFakeGame()
	saver := &recordingSaver{}
	m := newTestModel(g, saver)

	g.status = core.Status{Phase: "GameOver", GameOver: true}
	m.advance(time.Unix(1000, 0))

	assert.Empty(t, saver.entries)
}

func TestModelSaveErrorDoesNotStopGame(t *testing.T) {
	g := newFakeGame()
	saver := &recordingSaver{err: errors.New("disk full")}
	m := newTestModel(g, saver)

	g.status = core.Status{Phase: "GameOver", Score: 10, GameOver: true}
	_, cmd := m.Update(TickMsg{Time: time.Unix(1000, 0), loop: m.loop})

	assert.NotNil(t, cmd)
	assert.True(t, m.Status().GameOver)
}

func TestModelBackAndQuit(t *testing.T) {
	g := newFakeGame()
	m := newTestModel(g, nil)
	t0 := time.Unix(1000, 0)

	// Mid-level, back is passed to the game instead
	g.status = core.Status{Phase: "Playing"}
	m.advance(t0)
	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc}, t0)
	assert.Nil(t, cmd)
	assert.False(t, m.WentBack())

	g.status = core.Status{Phase: "Paused", Paused: true}
	m.advance(t0.Add(time.Second))
	_, cmd = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc}, t0)
	assert.NotNil(t, cmd)
	assert.True(t, m.WentBack())
	assert.Empty(t, m.View())

	m = newTestModel(newFakeGame(), nil)
	_, cmd = m.handleKey(runeKey('q'), t0)
	assert.NotNil(t, cmd)
	assert.True(t, m.Quitting())
}

func TestModelResize(t *testing.T) {
	g := newFakeGame()
	m := newTestModel(g, nil)

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Equal(t, 1, g.resets, "same size")

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 2, g.resets)

	// A finished game keeps its score on screen
	g.status = core.Status{Phase: "GameOver", Score: 5, GameOver: true}
	m.advance(time.Unix(1000, 0))
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	assert.Equal(t, 2, g.resets)

	// Leaving game over lays the game out for the new size
	g.status = core.Status{Phase: "StartMenu"}
	m.advance(time.Unix(1001, 0))
	assert.Equal(t, 3, g.resets)
	m.advance(time.Unix(1002, 0))
	assert.Equal(t, 3, g.resets)
}

func TestModelResizeAtGameOverLaysOutNextGame(t *testing.T) {
	coord := breakout.NewWithConfig(breakout.ModeClassic, config.DefaultBreakoutConfig())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewModel(coord, nil, cfg, WithLogger(quietLogger()))
	t0 := time.Unix(1000, 0)

	m.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, t0)
	m.advance(t0.Add(10 * time.Millisecond))
	require.Equal(t, "Playing", m.Status().Phase)

	for coord.Lives() > 0 {
		coord.LoseLife()
	}
	m.advance(t0.Add(20 * time.Millisecond))
	require.True(t, m.Status().GameOver)

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 16})
	assert.Equal(t, "GameOver", m.Status().Phase, "game over stays on screen")

	t1 := t0.Add(time.Second)
	m.handleKey(runeKey(' '), t1)
	m.advance(t1.Add(10 * time.Millisecond))
	require.Equal(t, "StartMenu", m.Status().Phase)

	t2 := t1.Add(time.Second)
	m.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, t2)
	m.advance(t2.Add(10 * time.Millisecond))
	require.Equal(t, "Playing", m.Status().Phase)

	coord.Render(m.screen)
	assert.Contains(t, m.screen.String(), string(breakout.PaddleChar), "paddle is on screen")
	assert.Equal(t, breakout.BorderVert, m.screen.Get(39, 13), "right wall at the new width")
}

// bestSaver reports a fixed best score.
type bestSaver struct {
	recordingSaver
	best int
}

func (s *bestSaver) HighScore(string) (int, error) { return s.best, nil }

func TestModelLogsNewHighScore(t *testing.T) {
	var buf bytes.Buffer
	g := newFakeGame()
	saver := &bestSaver{best: 100}
	m := NewModel(g, saver, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60},
		WithLogger(log.New(&buf)))

	g.status = core.Status{Phase: "GameOver", Score: 90, GameOver: true}
	m.advance(time.Unix(1000, 0))
	assert.NotContains(t, buf.String(), "new high score")

	g.status = core.Status{Phase: "StartMenu"}
	m.advance(time.Unix(1001, 0))
	g.status = core.Status{Phase: "GameOver", Score: 150, GameOver: true}
	m.advance(time.Unix(1002, 0))

	require.Len(t, saver.entries, 2)
	assert.Contains(t, buf.String(), "new high score")
}

func TestModelView(t *testing.T) {
	g := newFakeGame()
	m := newTestModel(g, nil)

	assert.Contains(t, m.View(), "StartMenu")
}
