// flappy is a terminal Flappy Bird with local high scores and SSH play.
//
// Usage:
//
//	flappy                   - Play (same as "flappy play")
//	flappy play              - Play in this terminal
//	flappy scores            - Show high scores
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the effective game config
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible pipe stream
//	--db <path>         - Set database path (default: XDG data dir)
//	--config <path>     - Use a custom game config YAML
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Log file for play (default: XDG state dir)
//	--log-json          - Write logs as JSON
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagLogJSON  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Guide the bird through the gaps between the pipes.
Space flaps; touching a pipe or the floor ends the run.

Available commands:
  play     - Play in this terminal (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  flappy
  flappy play --seed 7
  flappy scores --interactive
  flappy serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play (default: XDG state dir)")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Write logs as JSON")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game config or exits.
func loadGameConfig() (config.FlappyConfig, config.Source) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, src
}
