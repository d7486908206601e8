// snake is the handheld snake game played in a terminal.
//
// Usage:
//
//	snake                 - Play (resumes the saved game)
//	snake play            - Same as above
//	snake scores          - Print the best finished games
//	snake scoreboard      - Browse the history interactively
//	snake reset           - Delete the saved game
//	snake config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--seed <value>      - RNG seed for fruit placement (0 = config / time based)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-snake/internal/config"
)

// Exit codes.
const (
	exitOK       = 0
	exitUsage    = 1
	exitResource = 255 // the game could not acquire what it needs to start
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the handheld classic in your terminal",
	Long: `Snake on a 31x15 board. The game is saved when you leave and resumed
on the next start.

Available commands:
  play        - Play (default)
  scores      - Print the best finished games
  scoreboard  - Browse the game history
  reset       - Delete the saved game
  config      - Print the effective configuration

Examples:
  snake
  snake play --seed 42
  snake scores --mode endless
  snake reset`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config or time based)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
}

// mustLoadConfig loads the configuration or exits with a usage error.
func mustLoadConfig() (config.Config, string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(exitUsage)
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	paths, err := cfg.Paths.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}
	cfg.Paths = paths
	return cfg, source
}
