package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/runaway/internal/core"
	"github.com/vovakirdan/runaway/internal/registry"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running arcade games.
// The game decides when to stop; the model only schedules the next tick
// while the last step asked to continue.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	keys     GameKeyMap
	help     help.Model
	config   core.RuntimeConfig
	state    core.GameState
	ticking  bool
	quitting bool
	back     bool // Left with Esc rather than Q
	restarts int
}

// NewModel creates a model and starts a session of the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		config:  cfg,
		state:   game.State(),
		ticking: true,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.quitting = true
		m.back = true
		return m, tea.Quit

	case core.ActionRestart:
		// Restart only once the tick loop has stopped, so two loops never run.
		if m.ticking {
			return m, nil
		}
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.ticking = true
		m.restarts++
		return m, tickCmd(m.game.TickInterval())

	default:
		if action.IsMovement() {
			m.game.Input(action)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The game scales its arena
// to the screen on every render, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and reschedules while the game continues.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}

	result := m.game.Step()
	m.state = result.State

	if !result.Continue {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.game.TickInterval())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last step.
func (m Model) State() core.GameState {
	return m.state
}

// WantsMenu reports whether the player left with Esc to pick another game.
func (m Model) WantsMenu() bool {
	return m.back
}

// Restarts returns how many times the player restarted the game.
func (m Model) Restarts() int {
	return m.restarts
}

// Run starts the Bubble Tea program with the given game and returns the
// final model, from which the caller reads the session outcome.
func Run(game registry.Game, cfg core.RuntimeConfig) (Model, error) {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := finalModel.(Model); ok {
		return fm, nil
	}
	return model, nil
}
