package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/session"
)

// Model is the Bubble Tea model for terminal play.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	clock    *frameClock
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a model playing s on a cfg.ScreenW x cfg.ScreenH terminal.
func NewModel(s *session.Session, cfg core.RuntimeConfig) Model {
	return Model{
		session: s,
		screen:  core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:  cfg,
		clock:   &frameClock{},
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// playHeight leaves the last row for the help line.
func playHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.session.Tick(m.clock.delta(time.Time(msg)))
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey delivers input immediately, between ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if m.session.Input(action) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// saveScreenshot saves the current screen to ~/.flappy/screenshots.
func (m *Model) saveScreenshot() {
	Rasterize(m.session.Scene(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Rasterize(m.session.Scene(), m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for terminal play.
func Run(s *session.Session, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(s, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
