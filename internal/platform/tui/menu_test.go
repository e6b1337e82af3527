package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func press(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuSelectsPreset(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.PresetClassic)
	if !strings.Contains(m.View(), "Floaty") {
		t.Fatalf("View() should list the presets:\n%s", m.View())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}) // clamped at the last item
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.Result(); got.Quit || got.Preset != config.PresetLegacy {
		t.Errorf("Result() = %+v, expected legacy", got)
	}
}

func TestMenuStartsOnCurrentPreset(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.PresetFloaty)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.Result().Preset; got != config.PresetFloaty {
		t.Errorf("Preset = %q, expected floaty", got)
	}
}

func TestMenuQuitAndJournal(t *testing.T) {
	m := press(NewMenuModel(core.DefaultConfig(), ""), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.Result().Quit {
		t.Error("q should quit")
	}

	m = press(NewMenuModel(core.DefaultConfig(), ""), tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().OpenJournal {
		t.Error("tab should open the journal")
	}
}
