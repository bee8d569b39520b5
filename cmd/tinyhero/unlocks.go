package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tinyhero/internal/gimmick"
)

var unlocksCmd = &cobra.Command{
	Use:   "unlocks",
	Short: "Print the gimmick unlock table",
	Long: `Print the stage at which each gimmick first appears, together with
the full pool a course at that stage draws from.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeUnlocks(os.Stdout)
	},
}

func unlocksText() string {
	var sb strings.Builder
	writeUnlocks(&sb)
	return sb.String()
}

// writeUnlocks prints one line per unlocking stage.
func writeUnlocks(w io.Writer) {
	fmt.Fprintf(w, "  %-5s  %-26s  %s\n", "Stage", "New", "Pool")
	fmt.Fprintf(w, "  %-5s  %-26s  %s\n", "-----", "---", "----")
	for n := 1; n <= gimmick.MaxUnlockStage; n++ {
		fmt.Fprintf(w, "  %-5d  %-26s  %d\n", n, labels(gimmick.UnlockedAt(n)), len(gimmick.Unlocked(n)))
	}
	fmt.Fprintf(w, "\nFrom stage %d on every gimmick can appear.\n", gimmick.MaxUnlockStage)
}

func labels(kinds []gimmick.Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		if info, ok := gimmick.Lookup(k); ok {
			parts[i] = info.Icon + " " + info.Label
		} else {
			parts[i] = "???"
		}
	}
	return strings.Join(parts, ", ")
}
