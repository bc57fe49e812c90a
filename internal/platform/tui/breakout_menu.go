package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BreakoutMode represents the selected game mode.
type BreakoutMode int

const (
	BreakoutModeClassic BreakoutMode = iota
	BreakoutModeEndless
)

// GameID returns the registry ID of the mode.
func (m BreakoutMode) GameID() string {
	if m == BreakoutModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// BreakoutSelection holds the user's selection from the Breakout menu.
type BreakoutSelection struct {
	Mode       BreakoutMode
	Difficulty config.DifficultyPreset // Empty keeps the configured difficulty
}

// difficultyChoices are cycled with left/right. The first entry keeps
// whatever the config file says.
var difficultyChoices = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var modeOptions = []struct {
	mode BreakoutMode
	name string
	desc string
}{
	{BreakoutModeClassic, "Classic", "Clear the wall, then start over"},
	{BreakoutModeEndless, "Endless", "Score and lives carry on, the ball gets faster"},
}

// BreakoutModeModel lets users choose the game mode and difficulty.
type BreakoutModeModel struct {
	cursor     int
	difficulty int
	width      int
	height     int
	keys       MenuKeyMap
	help       help.Model
	selection  BreakoutSelection
	choosing   bool
	quitting   bool
	back       bool
}

// NewBreakoutModeModel creates a new Breakout mode selection model.
// A non-empty preset preselects that difficulty.
func NewBreakoutModeModel(width, height int, preset config.DifficultyPreset) BreakoutModeModel {
	m := BreakoutModeModel{
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
		choosing: true,
	}
	for i, d := range difficultyChoices {
		if d == preset {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the model.
func (m BreakoutModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BreakoutModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(MapKeyToMenuAction(m.keys, msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m BreakoutModeModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(modeOptions)-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(difficultyChoices) - 1) % len(difficultyChoices)
	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(difficultyChoices)
	case MenuActionSelect:
		m.choosing = false
		m.selection = BreakoutSelection{
			Mode:       modeOptions[m.cursor].mode,
			Difficulty: difficultyChoices[m.difficulty],
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the mode selection.
func (m BreakoutModeModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B R E A K O U T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, opt := range modeOptions {
		line := fmt.Sprintf("  %-8s %s", opt.name, menuDimStyle.Render(opt.desc))
		if i == m.cursor {
			line = menuSelectedStyle.Render("> "+fmt.Sprintf("%-8s", opt.name)) + " " + menuDimStyle.Render(opt.desc)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", difficultyLabel(difficultyChoices[m.difficulty])), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))

	return b.String()
}

func difficultyLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "config"
	}
	return string(p)
}

// Selected returns the selection, or nil if still choosing.
func (m BreakoutModeModel) Selected() *BreakoutSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m BreakoutModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m BreakoutModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BreakoutModeModel) WantsBack() bool {
	return m.back
}

// RunBreakoutModeSelector runs the Breakout mode selection and returns the selection.
// Returns nil when the user backs out or quits.
func RunBreakoutModeSelector(cfg core.RuntimeConfig, preset config.DifficultyPreset) (*BreakoutSelection, error) {
	model := NewBreakoutModeModel(cfg.ScreenW, cfg.ScreenH, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(BreakoutModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
