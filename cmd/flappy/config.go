package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning as YAML",
	Long: `Print the tuning the game would use after loading --config (or the
search path) and applying --preset. The output is a valid config file.

Examples:
  flappy config > ~/.flappy/configs/flappy.yaml
  flappy config --preset floaty
  flappy config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	s, err := loadSettings(cmd)
	if err != nil {
		fatal("%v", err)
	}
	tuning, err := s.tuning()
	if err != nil {
		fatal("%v", err)
	}

	out, err := yaml.Marshal(tuning)
	if err != nil {
		fatal("cannot encode tuning: %v", err)
	}
	fmt.Print(string(out))
}
