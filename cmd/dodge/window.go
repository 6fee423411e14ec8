package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/games/dodge"
	"github.com/vovakirdan/dodge/internal/platform/window"
	"github.com/vovakirdan/dodge/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window sized to the playing field.

Controls:
  ←/A       - Steer left
  →/D       - Steer right
  P         - Pause
  Esc/Q     - Quit
  Any key   - Exit after game over`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagGame, "game", dodge.ID, "Game to play")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	s := seed()

	game, err := registry.Create(flagGame, cfg, s)
	if err != nil {
		logger.Error("cannot create game", "error", err, "hint", "run 'dodge list' to see available games")
		os.Exit(1)
	}
	logger.Debug("starting game", "game", game.ID(), "seed", s, "fps", cfg.Timing.FPS)

	if _, err := window.Run(game, cfg, window.WithFinishHook(logFinished)); err != nil {
		logger.Error("cannot open window", "error", err, "hint", "a graphical display is required; use 'dodge play' in a terminal")
		os.Exit(1)
	}
}
