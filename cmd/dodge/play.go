package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge"
	"github.com/vovakirdan/dodge/internal/platform/tui"
	"github.com/vovakirdan/dodge/internal/registry"
)

var flagGame string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  ←/A/H     - Steer left (hold)
  →/D/L     - Steer right (hold)
  P         - Pause
  Esc/Q     - Quit
  Any key   - Exit after game over

Terminals do not report key releases, so a steering key counts as held
while it auto-repeats and for a short moment after (timing.key_hold_ms).

Examples:
  dodge play
  dodge play --seed 42
  dodge play --config ./my-dodge.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagGame, "game", dodge.ID, "Game to play")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// Get terminal size; the model also follows resize events
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.FPS,
		Seed:     seed(),
	}

	game, err := registry.Create(flagGame, cfg, rt.Seed)
	if err != nil {
		logger.Error("cannot create game", "error", err, "hint", "run 'dodge list' to see available games")
		os.Exit(1)
	}
	logger.Debug("starting game", "game", game.ID(), "seed", rt.Seed, "fps", rt.TickRate)

	if _, err := tui.Run(game, cfg, rt, tui.WithFinishHook(logFinished)); err != nil {
		if errors.Is(err, tui.ErrNoTerminal) {
			logger.Error("no terminal available", "hint", "run dodge in an interactive terminal, or use 'dodge window'")
		} else {
			logger.Error("cannot run game", "error", err)
		}
		os.Exit(1)
	}
}
