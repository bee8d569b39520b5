package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tinyhero/internal/platform/tui"
	"github.com/vovakirdan/tinyhero/internal/storage"
)

var flagClearRuns bool

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded stage attempts",
	Long: `Open the run history table. Tab switches between the best attempts
and the most recent ones.

Examples:
  tinyhero runs
  tinyhero runs --db ./runs.db
  tinyhero runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete all recorded runs")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		logger.Info("run history cleared", "path", flagDBPath)
		return nil
	}

	width, height := terminalSize()
	_, err = tui.RunRunsView(store, width, height)
	return err
}
