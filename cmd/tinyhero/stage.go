package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tinyhero/internal/gimmick"
	"github.com/vovakirdan/tinyhero/internal/stage"
)

var stageCmd = &cobra.Command{
	Use:   "stage <n>",
	Short: "Print a generated course",
	Long: `Generate the course for stage n and print every placement.
A run started with the same --seed meets exactly this course at stage n,
however the earlier stages went.

Examples:
  tinyhero stage 1
  tinyhero stage 8 --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runStage,
}

func runStage(_ *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("stage number %q: %w", args[0], err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s, err := stage.Course(cfg.StageParams(), seed, n)
	if err != nil {
		return err
	}

	writeCourse(os.Stdout, s, seed)
	return nil
}

// writeCourse prints one line per placement followed by length and speed.
func writeCourse(w io.Writer, s *stage.Stage, seed int64) {
	fmt.Fprintf(w, "Stage %d (seed %d, %d pixels)\n\n", s.Number, seed, stage.PixelsForStage(s.Number))
	fmt.Fprintf(w, "  %-3s  %8s  %-12s  %s\n", "#", "X", "Kind", "Label")
	fmt.Fprintf(w, "  %-3s  %8s  %-12s  %s\n", "--", "-", "----", "-----")
	for i, p := range s.Placements {
		fmt.Fprintf(w, "  %-3d  %8.1f  %-12s  %s\n", i+1, p.X, p.Kind, kindLabel(p.Kind))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Length: %.1f\n", s.Length)
	fmt.Fprintf(w, "Speed:  %.2f\n", s.Speed)
}

func kindLabel(k gimmick.Kind) string {
	if info, ok := gimmick.Lookup(k); ok {
		return info.Label
	}
	return "???"
}
