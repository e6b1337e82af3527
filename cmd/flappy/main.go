// flappy is a side-scrolling flap-through-the-pipes game for the terminal,
// a native window, or remote terminals over SSH.
//
// Usage:
//
//	flappy play          - Play in the terminal
//	flappy menu          - Pick a preset, play, repeat
//	flappy window        - Play in a native window
//	flappy serve         - Start SSH server for remote play
//	flappy runs          - List journaled rounds
//	flappy replay <id>   - Re-simulate a journaled round and verify it
//	flappy config        - Print the effective tuning as YAML
//
// Global flags (each also read from FLAPPY_<NAME>, e.g. FLAPPY_LOG_LEVEL):
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set pipe seed for reproducible rounds (0 = random per round)
//	--db <path>          - Set journal database path (default: ~/.flappy/runs.db)
//	--config <path>      - Custom tuning YAML
//	--preset <name>      - Tuning preset: classic, floaty, legacy
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through the pipes in your terminal",
	Long: `Flappy is a side-scrolling game: flap to keep the bird in the air and
slip through the gaps of an endless row of pipes.

Available commands:
  play     - Play in the terminal
  menu     - Pick a preset and play
  window   - Play in a native window
  serve    - Start SSH server for remote play
  runs     - List journaled rounds
  replay   - Re-simulate a journaled round
  config   - Print the effective tuning

Examples:
  flappy play
  flappy play --preset floaty --seed 42
  flappy menu
  flappy window
  flappy serve --ssh :2222
  flappy runs --limit 10
  flappy replay 12`,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 60, "Tick rate (frames per second)")
	flags.Int64("seed", 0, "Pipe seed (0 = random every round)")
	flags.String("db", "~/.flappy/runs.db", "Path to the run journal database")
	flags.String("config", "", "Path to custom tuning YAML")
	flags.String("preset", "", "Tuning preset: classic, floaty, legacy")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
