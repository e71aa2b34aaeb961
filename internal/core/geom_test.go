package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y), "Contains(%d, %d)", tc.x, tc.y)
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{-350, -350, 350, -350},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ClampF(tc.val, tc.min, tc.max), "ClampF(%v, %v, %v)", tc.val, tc.min, tc.max)
	}
}

func TestViewportToScreen(t *testing.T) {
	v := Viewport{
		Screen:     NewRect(1, 2, 21, 11),
		HalfWidth:  350,
		HalfHeight: 350,
	}

	tests := []struct {
		name   string
		x, y   float64
		sx, sy int
	}{
		{"origin maps to center", 0, 0, 11, 7},
		{"top-left corner", -350, 350, 1, 2},
		{"bottom-right corner", 350, -350, 21, 12},
		{"outside is pinned to edge", 1000, -1000, 21, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy := v.ToScreen(tc.x, tc.y)
			assert.Equal(t, [2]int{tc.sx, tc.sy}, [2]int{sx, sy})
		})
	}
}

func TestViewportDegenerate(t *testing.T) {
	v := Viewport{Screen: NewRect(3, 4, 0, 0), HalfWidth: 350, HalfHeight: 350}
	sx, sy := v.ToScreen(100, 100)
	assert.Equal(t, [2]int{3, 4}, [2]int{sx, sy}, "degenerate viewport should return its origin")
}

func TestActionIsMovement(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		assert.True(t, a.IsMovement(), "%s should be a movement action", a)
	}
	for _, a := range []Action{ActionNone, ActionConfirm, ActionBack, ActionRestart, ActionQuit} {
		assert.False(t, a.IsMovement(), "%s should not be a movement action", a)
	}
}
