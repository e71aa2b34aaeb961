package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/runaway/internal/core"
)

// stubGame continues for a fixed number of steps, then stops.
type stubGame struct {
	stopAfter int
	steps     int
	resets    int
	inputs    []core.Action
	lastCfg   core.RuntimeConfig
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.lastCfg = cfg
}

func (g *stubGame) Input(a core.Action) {
	g.inputs = append(g.inputs, a)
}

func (g *stubGame) Step() core.StepResult {
	g.steps++
	running := g.steps < g.stopAfter
	return core.StepResult{
		State:    core.GameState{Score: g.steps, Running: running, Won: !running},
		Continue: running,
	}
}

func (g *stubGame) TickInterval() time.Duration { return 100 * time.Millisecond }

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.steps, Running: g.steps < g.stopAfter}
}

func newStubModel(stopAfter int) (Model, *stubGame) {
	g := &stubGame{stopAfter: stopAfter}
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, Seed: 7}), g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T, want Model", next)
	return nm, cmd
}

func TestNewModelStartsSession(t *testing.T) {
	m, g := newStubModel(3)

	assert.Equal(t, 1, g.resets, "game should be reset once")
	assert.Equal(t, int64(7), g.lastCfg.Seed)
	assert.NotNil(t, m.Init(), "Init should schedule the first tick")
}

func TestTickReschedulesOnlyWhileContinuing(t *testing.T) {
	m, g := newStubModel(3)

	var cmd tea.Cmd
	for i := 1; i <= 2; i++ {
		m, cmd = update(t, m, TickMsg{})
		require.NotNil(t, cmd, "tick %d: expected next tick to be scheduled", i)
	}

	m, cmd = update(t, m, TickMsg{})
	assert.Nil(t, cmd, "expected no tick after the game stopped")
	assert.True(t, m.State().Won)

	// A stray tick after stopping must not step the game.
	_, _ = update(t, m, TickMsg{})
	assert.Equal(t, 3, g.steps)
}

func TestOnlyMovementKeysReachGame(t *testing.T) {
	m, g := newStubModel(10)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, runeKey('d'))
	_, _ = update(t, m, runeKey('x'))

	want := []core.Action{core.ActionUp, core.ActionLeft, core.ActionRight}
	assert.Equal(t, want, g.inputs)
}

func TestRestartOnlyAfterGameStops(t *testing.T) {
	m, g := newStubModel(1)

	m, cmd := update(t, m, runeKey('r'))
	require.Nil(t, cmd, "restart must be ignored while the tick loop runs")
	require.Equal(t, 1, g.resets)

	m, _ = update(t, m, TickMsg{})
	m, cmd = update(t, m, runeKey('r'))
	assert.NotNil(t, cmd, "restart should schedule a new tick loop")
	assert.Equal(t, 2, g.resets)
	assert.NotEqual(t, int64(7), g.lastCfg.Seed, "restart should pick a new seed")
	assert.Equal(t, 1, m.Restarts())
}

func TestQuit(t *testing.T) {
	m, _ := newStubModel(10)

	m, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd, "expected quit command")
	assert.Empty(t, m.View(), "view should be empty after quitting")
	assert.False(t, m.WantsMenu(), "q exits the program")
}

func TestEscLeavesForMenu(t *testing.T) {
	m, g := newStubModel(10)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd, "expected quit command")
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.WantsMenu())
	assert.Empty(t, m.View())
	assert.Empty(t, g.inputs, "esc must not reach the game")
}

func TestResizeKeepsSession(t *testing.T) {
	m, g := newStubModel(10)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 1, g.resets, "resize must not reset the game")
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 30-helpHeight, m.screen.Height())
	assert.Contains(t, m.View(), "stub")
}
