package registry

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/runaway/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Input(core.Action) {}
func (g *stubGame) Step() core.StepResult { return core.StepResult{} }
func (g *stubGame) TickInterval() time.Duration { return time.Millisecond }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", "Stub Game", func() (Game, error) {
		return &stubGame{id: "zz_stub"}, nil
	})

	require.True(t, Exists("zz_stub"))

	g, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, "zz_stub", g.ID())
	assert.Contains(t, List(), GameInfo{ID: "zz_stub", Title: "Stub Game"})
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist")
	assert.Error(t, err)
	assert.False(t, Exists("does_not_exist"))
}

func TestCreateSetupError(t *testing.T) {
	setupErr := errors.New("bad config")
	Register("zz_broken", "Broken", func() (Game, error) {
		return nil, setupErr
	})

	g, err := Create("zz_broken")
	assert.Nil(t, g)
	assert.ErrorIs(t, err, setupErr, "Create should wrap the factory error")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", "Dup", func() (Game, error) { return &stubGame{}, nil })

	assert.Panics(t, func() {
		Register("zz_dup", "Dup", func() (Game, error) { return &stubGame{}, nil })
	})
}

func TestListSorted(t *testing.T) {
	Register("zz_b", "B", func() (Game, error) { return &stubGame{}, nil })
	Register("zz_a", "A", func() (Game, error) { return &stubGame{}, nil })

	games := List()
	assert.True(t, sort.SliceIsSorted(games, func(i, j int) bool { return games[i].ID < games[j].ID }))
}
