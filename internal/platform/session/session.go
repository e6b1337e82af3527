// Package session is the glue every shell shares: it owns a recorded game,
// clamps frame deltas, logs state changes and saves finished rounds.
package session

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/journal"
	"github.com/vovakirdan/tui-flappy/internal/platform/scene"
)

// RunSaver persists finished rounds. *storage.Store satisfies it.
type RunSaver interface {
	SaveRun(run journal.Run) (int64, error)
}

// Session is one player's game.
type Session struct {
	rec      *journal.Recorder
	saver    RunSaver
	logger   *log.Logger
	maxDelta float64
}

// New creates a session. A nil saver disables the journal.
func New(cfg config.FlappyConfig, seeds flappy.SeedPolicy, saver RunSaver, logger *log.Logger) (*Session, error) {
	g, err := flappy.New(cfg, seeds)
	if err != nil {
		return nil, err
	}
	rec, err := journal.NewRecorder(g)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	return &Session{
		rec:      rec,
		saver:    saver,
		logger:   logger,
		maxDelta: cfg.Clock.MaxFrameDelta,
	}, nil
}

// Game returns the underlying game.
func (s *Session) Game() *flappy.Game {
	return s.rec.Game()
}

// Scene describes the current frame.
func (s *Session) Scene() scene.Scene {
	return scene.Build(s.rec.Game())
}

// Input applies a. It returns true when the player asked to quit.
func (s *Session) Input(a core.Action) (quit bool) {
	before := s.Game().State()
	if s.rec.HandleInput(a) {
		s.logger.Debug("quit requested", "state", before)
		return true
	}
	s.logTransition(before)
	return false
}

// Tick advances the game by dt seconds, clamped to the configured maximum.
func (s *Session) Tick(dt float64) {
	dt = core.ClampF(dt, 0, s.maxDelta)

	before := s.Game().State()
	run := s.rec.Update(dt)
	s.logTransition(before)

	if run != nil {
		s.finish(run)
	}
}

func (s *Session) logTransition(before flappy.State) {
	g := s.Game()
	after := g.State()
	if before.String() == after.String() {
		return
	}

	switch st := after.(type) {
	case flappy.Running:
		s.logger.Debug("round started", "round", g.Round(), "seed", g.Seed())
	case flappy.GameOver:
		s.logger.Info("round over",
			"round", g.Round(),
			"reason", st.Reason,
			"frames", g.Frames(),
			"seconds", fmt.Sprintf("%.2f", g.Elapsed()),
			"pipes", g.Pipes().Respawns(),
		)
	}
}

func (s *Session) finish(run *journal.Run) {
	if s.saver == nil {
		return
	}
	id, err := s.saver.SaveRun(*run)
	if err != nil {
		s.logger.Warn("could not save run", "err", err)
		return
	}
	s.logger.Debug("run saved", "id", id, "events", len(run.Events))
}
