package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/journal"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a journaled round",
	Long: `Rebuild a journaled round from its seed, tuning and recorded events,
run it headlessly and check that it ends exactly as it did when played.

Exits with a non-zero status if the replay diverges.

Examples:
  flappy replay 12`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fatal("invalid run id %q", args[0])
	}

	s, err := loadSettings(cmd)
	if err != nil {
		fatal("%v", err)
	}

	store, err := storage.Open(s.DBPath)
	if err != nil {
		fatal("cannot open database: %v", err)
	}
	defer store.Close()

	run, err := store.Run(id)
	if err != nil {
		fatal("%v", err)
	}

	got, err := journal.Verify(*run)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("Run %d (seed %d): %d events\n", run.ID, run.Seed, len(run.Events))
	fmt.Printf("  frames:   %d\n", got.Frames)
	fmt.Printf("  time:     %.2fs\n", got.Elapsed)
	fmt.Printf("  pipes:    %d\n", got.Respawns)
	fmt.Printf("  ended by: %s at y=%.2f\n", got.Reason, got.FinalY)
	fmt.Println("Replay matches the recording.")
}
