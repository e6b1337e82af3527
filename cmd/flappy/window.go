package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/entropy"
	"github.com/vovakirdan/tui-flappy/internal/platform/session"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Play in a native window sized to the world (800x600 by default).

Controls:
  Space/Up/W/Enter - Start, flap, restart (after the cooldown)
  Esc/Q            - Quit

Examples:
  flappy window
  flappy window --preset legacy --fps 120`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	s, tuning, logger, closer := mustSetup(cmd, "flappy", os.Stderr)
	defer closer.Close()

	store, saver := s.openJournal(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := session.New(tuning, entropy.PolicyFor(s.Seed), saver, logger)
	if err != nil {
		fatal("%v", err)
	}

	if err := window.Run(game, s.FPS); err != nil {
		fatal("%v", err)
	}
}
