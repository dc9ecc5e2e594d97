// scienteer is a 2D platformer: a scientist walks, jumps and throws chemical
// bottles while an alien patrols the lab.
//
// Usage:
//
//	scienteer run        - Open the game window
//	scienteer simulate   - Run the game headless with scripted input and print a report
//
// Global flags:
//
//	--config <file>      - YAML tuning overrides (default: built-in)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/plus3/scienteer/config"
)

var (
	flagConfig   string
	flagLogLevel string

	runID  = uuid.NewString()
	logger = newLogger()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scienteer",
	Short: "Scienteer - a tiny lab platformer",
	Long: `Scienteer is a 2D platformer. Move with A/D or the arrow keys, jump
with Space or Up and throw bottles with either Control key.

Examples:
  scienteer run
  scienteer run --assets ./assets --debug
  scienteer simulate --duration 5s --script "0-2:right,fire;1:jump"`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML tuning file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "scienteer",
	}).With("run", runID[:8])
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagConfig != "" {
		logger.Debug("config loaded", "path", flagConfig)
	}
	return cfg, nil
}
