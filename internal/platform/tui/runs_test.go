package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/journal"
)

type memorySource struct {
	runs []journal.Run
}

func (m *memorySource) RecentRuns(limit int) ([]journal.Run, error) {
	return m.runs, nil
}

func (m *memorySource) Run(id int64) (*journal.Run, error) {
	for i := range m.runs {
		if m.runs[i].ID == id {
			return &m.runs[i], nil
		}
	}
	return nil, errors.New("not found")
}

func recordedRun(t *testing.T, id int64) journal.Run {
	t.Helper()

	g, err := flappy.New(config.DefaultFlappyConfig(), flappy.FixedSeed(id))
	if err != nil {
		t.Fatalf("flappy.New() error: %v", err)
	}
	rec, err := journal.NewRecorder(g)
	if err != nil {
		t.Fatalf("NewRecorder() error: %v", err)
	}

	rec.HandleInput(core.ActionPrimary)
	for range 1000 {
		if run := rec.Update(1.0 / 60); run != nil {
			run.ID = id
			return *run
		}
	}
	t.Fatal("round never ended")
	return journal.Run{}
}

func TestRunsModelReplaysSelection(t *testing.T) {
	src := &memorySource{runs: []journal.Run{recordedRun(t, 1), recordedRun(t, 2)}}
	m := NewRunsModel(src, 100, 30)

	if !strings.Contains(m.View(), "out_of_bounds") {
		t.Errorf("View() should list the runs:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(RunsModel)
	if !strings.Contains(m.Status(), "run 1 replayed") {
		t.Errorf("Status() = %q", m.Status())
	}

	// Tampered records are reported instead of replayed.
	src.runs[1].Frames = 1
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(RunsModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(RunsModel)
	if !strings.Contains(m.Status(), "does not match") {
		t.Errorf("Status() = %q, expected a mismatch", m.Status())
	}
}

func TestRunsModelEmpty(t *testing.T) {
	m := NewRunsModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("View() = %q", m.View())
	}
}
