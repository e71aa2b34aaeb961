package runaway

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

var wanderMoves = [...]Move{MoveForward, MoveTurnLeft, MoveTurnRight}

// RandomWander is a memoryless Behavior: each tick it picks forward, left
// or right with equal probability. The counterpart is ignored.
type RandomWander struct {
	rng *rand.Rand
}

// NewRandomWander creates a wander behavior drawing from rng.
func NewRandomWander(rng *rand.Rand) *RandomWander {
	return &RandomWander{rng: rng}
}

// Decide returns exactly one move.
func (w *RandomWander) Decide(_ *Actor, _ r2.Vec, _ float64) Command {
	return Command{Moves: []Move{wanderMoves[w.rng.Intn(len(wanderMoves))]}}
}
