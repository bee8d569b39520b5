package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tinyhero/internal/config"
	"github.com/vovakirdan/tinyhero/internal/core"
	"github.com/vovakirdan/tinyhero/internal/game"
	"github.com/vovakirdan/tinyhero/internal/platform/tui"
	"github.com/vovakirdan/tinyhero/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a Tiny Hero run.

Controls:
  WASD/Arrows  - Move the edit cursor
  Space/X      - Toggle a pixel
  Enter        - Depart / next stage / retry
  P            - Pause
  R            - Retry after game over
  B/Esc        - Back to title
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Every finished stage attempt is recorded in the run history.

Examples:
  tinyhero play
  tinyhero play --seed 42
  tinyhero play --fps 30 --log-file ./tinyhero.log
  tinyhero play --config ./my-tinyhero.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		if store != nil {
			defer store.Close()
		}
		w, h := terminalSize()
		return playSession(store, w, h)
	},
}

// terminalSize returns the current terminal size, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// openStore opens the run history. The game runs without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history, runs will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// loadConfig loads the game configuration and reports where it came from.
func loadConfig() (config.Config, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", src)
	return cfg, nil
}

// gameLogger builds the in-game event logger. Events are discarded unless
// --log-file is set, since the TUI owns the terminal.
func gameLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), nil, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tinyhero",
		Level:           log.DebugLevel,
	})
	return l, f, nil
}

// playSession runs one TUI session until the player quits.
func playSession(store *storage.Store, width, height int) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	glog, closer, err := gameLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = width, height
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed

	// A nil *Store inside the interface would not compare equal to nil.
	var saver tui.RunSaver
	if store != nil {
		saver = store
	}

	if err := tui.Run(game.New(cfg, glog), saver, glog, rc); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
