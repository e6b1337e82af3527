package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKeyPath string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that lets users play remotely.

Each connection gets its own game; every finished round is journaled in the
shared database.

Examples:
  flappy serve
  flappy serve --ssh :2222
  flappy serve --ssh 0.0.0.0:23234 --host-key /path/to/key

Connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKeyPath, "host-key", "", "Path to SSH host key (default: ~/.flappy/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Idle connection timeout")
}

func runServe(cmd *cobra.Command, args []string) {
	s, tuning, logger, closer := mustSetup(cmd, "flappy-ssh", os.Stderr)
	defer closer.Close()

	store, saver := s.openJournal(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKeyPath,
		IdleTimeout: flagIdleTimeout,
		TickRate:    s.FPS,
		Seed:        s.Seed,
	}

	server, err := tui.NewSSHServer(cfg, tuning, saver, logger)
	if err != nil {
		fatal("%v", err)
	}

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
	}
}
