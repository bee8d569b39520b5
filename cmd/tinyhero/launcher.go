package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tinyhero/internal/platform/tui"
	"github.com/vovakirdan/tinyhero/internal/storage"
)

// runLauncher shows the menu and returns to it after each screen.
func runLauncher(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	for {
		width, height := terminalSize()

		choice, err := tui.RunMenu(width, height, bestStage(store))
		if err != nil {
			return err
		}

		var goBack bool
		switch choice {
		case tui.MenuPlay:
			// Quitting a run returns to the menu.
			if err := playSession(store, width, height); err != nil {
				return err
			}
			goBack = true

		case tui.MenuRuns:
			goBack, err = tui.RunRunsView(runSource(store), width, height)

		case tui.MenuUnlocks:
			goBack, err = tui.RunTextView("GIMMICKS", unlocksText(), width)

		default:
			return nil
		}

		if err != nil {
			return err
		}
		if !goBack {
			return nil
		}
	}
}

// runSource avoids wrapping a nil *Store in the interface.
func runSource(store *storage.Store) tui.RunSource {
	if store == nil {
		return nil
	}
	return store
}

func bestStage(store *storage.Store) int {
	if store == nil {
		return 0
	}
	best, err := store.BestStage()
	if err != nil {
		logger.Warn("could not read best stage", "error", err)
		return 0
	}
	return best
}
