package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/entropy"
	"github.com/vovakirdan/tui-flappy/internal/platform/session"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play in the terminal. The world is scaled to fit the terminal.

Controls:
  Space/Up/W/Enter - Start, flap, restart (after the cooldown)
  Ctrl+S           - Save a text screenshot to ~/.flappy/screenshots
  Q/Esc/Ctrl+C     - Quit

Every finished round is journaled and can be replayed with 'flappy replay'.

Examples:
  flappy play
  flappy play --preset floaty
  flappy play --seed 42 --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// Logging to stderr would corrupt the alternate screen.
	s, tuning, logger, closer := mustSetup(cmd, "flappy", io.Discard)
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.FPS,
		Seed:     s.Seed,
	}

	store, saver := s.openJournal(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := session.New(tuning, entropy.PolicyFor(cfg.Seed), saver, logger)
	if err != nil {
		fatal("%v", err)
	}

	if err := tui.Run(game, cfg); err != nil {
		fatal("%v", err)
	}
}
