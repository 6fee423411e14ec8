// dodge is Car Dodge: steer a car left and right to avoid falling obstacles.
//
// Usage:
//
//	dodge                    - Play in the terminal (same as "dodge play")
//	dodge play               - Play in the terminal
//	dodge window             - Play in a desktop window
//	dodge serve              - Start SSH server for remote play
//	dodge list               - List available games
//	dodge config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Override the configured frame rate
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Load gameplay settings from a YAML file
//	--verbose        - Enable debug logging
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/dodge/internal/games/dodge"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagVerbose bool
)

// logger is shared by all commands and writes to stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "dodge",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Car Dodge - dodge falling obstacles in your terminal",
	Long: `Car Dodge puts a car at the bottom of the road and drops obstacles from
the top. Steer left and right to avoid them; they fall faster as your
score grows. One hit ends the game.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  dodge
  dodge play --seed 42
  dodge window
  dodge serve --ssh :2222
  dodge config > ~/.arcade/configs/dodge.yaml`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves and validates the gameplay configuration, applying
// command line overrides. It exits on failure.
func loadConfig() config.DodgeConfig {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "source", source, "error", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", source)
	return cfg
}

// seed returns the --seed value, or a time based seed if unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// logFinished records the outcome of a game.
func logFinished(st core.GameState) {
	logger.Info("game finished", "outcome", st.Phase, "score", st.Score, "frames", st.Frames)
}
