package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/session"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// settings are the resolved global flags.
type settings struct {
	FPS        int
	Seed       int64
	DBPath     string
	ConfigPath string
	Preset     string
	LogLevel   string
	LogFile    string
}

// loadSettings reads the command's flags, letting FLAPPY_* variables fill
// anything not given on the command line.
func loadSettings(cmd *cobra.Command) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix("FLAPPY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return settings{}, fmt.Errorf("cannot bind flags: %w", err)
	}

	return settings{
		FPS:        v.GetInt("fps"),
		Seed:       v.GetInt64("seed"),
		DBPath:     v.GetString("db"),
		ConfigPath: v.GetString("config"),
		Preset:     v.GetString("preset"),
		LogLevel:   v.GetString("log-level"),
		LogFile:    v.GetString("log-file"),
	}, nil
}

// tuning loads the game configuration and applies the preset.
func (s settings) tuning() (config.FlappyConfig, error) {
	preset, err := config.ParsePreset(s.Preset)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	return s.tuningFor(preset)
}

// tuningFor loads the game configuration with an explicit preset.
func (s settings) tuningFor(preset config.Preset) (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(s.ConfigPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// logger creates the logger. Without --log-file it writes to fallback.
// The returned closer must be closed when the command ends.
func (s settings) logger(prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}

	w, closer := fallback, io.Closer(nopCloser{})
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openJournal opens the run journal. Failure only disables journaling.
func (s settings) openJournal(logger *log.Logger) (*storage.Store, session.RunSaver) {
	store, err := storage.Open(s.DBPath)
	if err != nil {
		logger.Warn("could not open run journal", "err", err)
		return nil, nil
	}
	return store, store
}

// mustSetup resolves settings, tuning and logger, exiting on error.
func mustSetup(cmd *cobra.Command, prefix string, fallback io.Writer) (settings, config.FlappyConfig, *log.Logger, io.Closer) {
	s, err := loadSettings(cmd)
	if err != nil {
		fatal("%v", err)
	}
	logger, closer, err := s.logger(prefix, fallback)
	if err != nil {
		fatal("%v", err)
	}
	tuning, err := s.tuning()
	if err != nil {
		closer.Close()
		fatal("%v", err)
	}
	return s, tuning, logger, closer
}
