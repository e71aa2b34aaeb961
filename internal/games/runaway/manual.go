package runaway

import (
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
)

// maxPendingMoves caps the input queue so key repeat cannot pile up
// while ticks are not being processed.
const maxPendingMoves = 32

// Manual is a Behavior driven by queued player input.
// Enqueue may be called from the input goroutine while the game loop calls
// Decide; every queued move is consumed by the next Decide.
type Manual struct {
	mu      sync.Mutex
	pending []Move
}

// NewManual creates a Manual behavior with an empty queue.
func NewManual() *Manual {
	return &Manual{}
}

// Enqueue adds a move to the queue. Moves beyond the cap are dropped.
func (m *Manual) Enqueue(mv Move) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pending) >= maxPendingMoves {
		return false
	}
	m.pending = append(m.pending, mv)
	return true
}

// Pending returns the number of queued moves.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Clear drops all queued moves.
func (m *Manual) Clear() {
	m.mu.Lock()
	m.pending = nil
	m.mu.Unlock()
}

// Decide drains the queue. The counterpart is ignored.
func (m *Manual) Decide(_ *Actor, _ r2.Vec, _ float64) Command {
	m.mu.Lock()
	moves := m.pending
	m.pending = nil
	m.mu.Unlock()

	return Command{Moves: moves}
}
