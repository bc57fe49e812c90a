package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakout",
	Long: `Start playing. Without --mode a selector picks the mode and difficulty.

Controls:
  Left/A, Right/D  - Move the paddle
  Enter            - Start from the title screen
  P                - Pause
  Space/R          - Continue after game over
  Esc/B            - Back to the mode selector
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Modes:
  classic  - Clearing the wall starts a fresh game
  endless  - Score and lives carry over, each level is faster

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Default settings
  hard   - Fewer lives, narrower paddle, faster ball
  fixed  - No speed progression

Examples:
  breakout play
  breakout play --mode endless
  breakout play --difficulty hard
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: classic or endless (skips the selector)")
}

// parseMode maps a --mode value to a selector mode.
func parseMode(s string) (tui.BreakoutMode, error) {
	switch s {
	case "classic", "breakout":
		return tui.BreakoutModeClassic, nil
	case "endless", "breakout_endless":
		return tui.BreakoutModeEndless, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want classic or endless)", s)
}

// newGameFactory builds games from the config file with the selected
// difficulty applied on top.
func newGameFactory(configPath string) tui.GameFactory {
	return func(sel tui.BreakoutSelection) (registry.Game, error) {
		cfg, err := config.LoadBreakout(configPath)
		if err != nil {
			return nil, err
		}
		config.ApplyBreakoutPreset(&cfg, sel.Difficulty)

		mode := breakout.ModeClassic
		if sel.Mode == tui.BreakoutModeEndless {
			mode = breakout.ModeEndless
		}
		return breakout.NewWithConfig(mode, cfg), nil
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	var fixed *tui.BreakoutSelection
	if flagMode != "" {
		mode, err := parseMode(flagMode)
		if err != nil {
			return err
		}
		fixed = &tui.BreakoutSelection{Mode: mode, Difficulty: preset}
	}

	logger, closeLog, err := newLogger("breakout", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Fail early on a bad config file instead of inside the game
	if _, err := config.LoadBreakout(flagConfig); err != nil {
		return err
	}
	newGame := newGameFactory(flagConfig)

	// Open score storage
	var saver tui.ScoreSaver
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	} else {
		saver = store
		defer store.Close()
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed

	for {
		sel := fixed
		if sel == nil {
			sel, err = tui.RunBreakoutModeSelector(cfg, preset)
			if err != nil {
				return err
			}
			// User pressed back or quit
			if sel == nil {
				return nil
			}
		}

		game, err := newGame(*sel)
		if err != nil {
			return err
		}
		logger.Info("game started", "game", game.ID(), "difficulty", sel.Difficulty)

		back, err := tui.Run(game, saver, cfg, tui.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back || fixed != nil {
			return nil
		}
	}
}
