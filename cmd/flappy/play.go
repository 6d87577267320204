package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in this terminal.

Controls:
  Space      - Flap
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs one local session. Errors are returned so the deferred
// closes run before the process exits.
func playGame() error {
	// The game owns the terminal, so logs go to a file
	logFile, logPath, err := logging.OpenFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	opts := tui.Options{Logger: logging.Discard()}
	if logFile != nil {
		defer logFile.Close()
		opts.Logger = logging.New(logFile, logging.Options{
			Prefix: "flappy",
			Level:  logging.ParseLevel(flagLogLevel),
			JSON:   flagLogJSON,
		})
	}

	gameCfg, src, err := config.Load(flagConfig)
	if err != nil {
		opts.Logger.Error("could not load config", "error", err)
		return err
	}
	opts.Logger.Debug("config loaded", "source", src, "log", logPath)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: gameCfg.Timing.TickInterval,
		Seed:         flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		opts.Logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		opts.Store = store
	}

	game := flappy.New(gameCfg, cfg.Seed)
	if err := tui.Run(game, cfg, opts); err != nil {
		opts.Logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
