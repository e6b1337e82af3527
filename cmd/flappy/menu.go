package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/entropy"
	"github.com/vovakirdan/tui-flappy/internal/platform/session"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a preset, play, and come back",
	Long: `Start in interactive menu mode.

Pick a tuning preset and play. Quitting a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected preset
  Tab          - Browse the run journal
  Q            - Quit

Examples:
  flappy menu
  flappy menu --fps 30 --config my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	s, _, logger, closer := mustSetup(cmd, "flappy", io.Discard)
	defer closer.Close()

	store, saver := s.openJournal(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.FPS,
		Seed:     s.Seed,
	}

	current, err := config.ParsePreset(s.Preset)
	if err != nil {
		fatal("%v", err)
	}

	for {
		result, err := tui.RunMenu(cfg, current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.OpenJournal {
			if store == nil {
				continue
			}
			if err := tui.RunJournal(store, cfg.ScreenW, cfg.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}

		current = result.Preset
		tuning, err := s.tuningFor(current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		game, err := session.New(tuning, entropy.PolicyFor(cfg.Seed), saver, logger.With("preset", current))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if err := tui.Run(game, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
