package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/journal"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagRunsLimit       int
	flagRunsClear       bool
	flagRunsInteractive bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List journaled rounds",
	Long: `List the most recent rounds stored in the run journal.

Examples:
  flappy runs
  flappy runs --limit 50
  flappy runs --interactive
  flappy runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 20, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every journaled run")
	runsCmd.Flags().BoolVarP(&flagRunsInteractive, "interactive", "i", false, "Browse and replay runs interactively")
}

func runRuns(cmd *cobra.Command, args []string) {
	s, err := loadSettings(cmd)
	if err != nil {
		fatal("%v", err)
	}

	store, err := storage.Open(s.DBPath)
	if err != nil {
		fatal("cannot open database: %v", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fatal("%v", err)
		}
		fmt.Println("Run journal cleared.")
		return
	}

	if flagRunsInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunJournal(store, width, height); err != nil {
			fatal("%v", err)
		}
		return
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		fatal("%v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	printRuns(runs)
}

func printRuns(runs []journal.Run) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"ID", "PLAYED", "SEED", "FRAMES", "TIME", "PIPES", "ENDED"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Seed,
			r.Frames,
			fmt.Sprintf("%.2fs", r.Elapsed),
			r.Respawns,
			r.Reason,
		})
	}

	t.Render()
}
