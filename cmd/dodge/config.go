package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would start with, as YAML.
The output is a valid config file and can be edited and passed back
with --config.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()

	data, err := config.Marshal(cfg)
	if err != nil {
		logger.Error("cannot encode config", "error", err)
		os.Exit(1)
	}
	_, _ = cmd.OutOrStdout().Write(data)
}
