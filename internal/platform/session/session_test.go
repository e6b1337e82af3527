package session

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/journal"
)

type memorySaver struct {
	runs []journal.Run
	err  error
}

func (m *memorySaver) SaveRun(run journal.Run) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.runs = append(m.runs, run)
	return int64(len(m.runs)), nil
}

func newTestSession(t *testing.T, saver RunSaver) *Session {
	t.Helper()

	s, err := New(config.DefaultFlappyConfig(), flappy.FixedSeed(8), saver, log.New(io.Discard))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func TestSessionSavesFinishedRound(t *testing.T) {
	saver := &memorySaver{}
	s := newTestSession(t, saver)

	s.Input(core.ActionPrimary)
	for range 200 {
		s.Tick(1.0 / 60)
	}

	if _, ok := s.Game().State().(flappy.GameOver); !ok {
		t.Fatalf("State() = %v, expected game over", s.Game().State())
	}
	if len(saver.runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(saver.runs))
	}
	if _, err := journal.Verify(saver.runs[0]); err != nil {
		t.Errorf("saved run does not replay: %v", err)
	}
}

func TestSessionClampsDelta(t *testing.T) {
	s := newTestSession(t, nil)
	s.Input(core.ActionPrimary)

	s.Tick(5)
	if got := s.Game().Elapsed(); got != 0.1 {
		t.Errorf("Elapsed() = %v after a 5s tick, expected 0.1", got)
	}

	s.Tick(-1)
	if got := s.Game().Elapsed(); got != 0.1 {
		t.Errorf("Elapsed() = %v after a negative tick, expected 0.1", got)
	}
}

func TestSessionSurvivesSaveErrors(t *testing.T) {
	s := newTestSession(t, &memorySaver{err: errors.New("disk full")})

	s.Input(core.ActionPrimary)
	for range 200 {
		s.Tick(1.0 / 60)
	}
	if _, ok := s.Game().State().(flappy.GameOver); !ok {
		t.Fatalf("State() = %v, expected game over", s.Game().State())
	}
	if s.Input(core.ActionQuit) != true {
		t.Error("quit should still be reported")
	}
}
