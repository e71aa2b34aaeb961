// Package runaway implements the Runaway arcade game: the player chases a
// wandering pickup around a bounded arena while dodging wandering obstacles.
//
// Movement is unconstrained; the arena clamp is a separate step applied by
// the game loop after every movement.
package runaway

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Kind identifies the role an actor plays in the game.
type Kind int

const (
	KindPlayer Kind = iota
	KindPickup
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPickup:
		return "pickup"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Rotation is the sign of a turn. Counter-clockwise is a left turn.
type Rotation int

const (
	CounterClockwise Rotation = 1
	Clockwise        Rotation = -1
)

// Actor is a positioned, headed entity in arena space.
type Actor struct {
	kind     Kind
	pos      r2.Vec
	heading  float64 // degrees in [0, 360), 0 points along +X
	stepMove float64
	stepTurn float64
}

// NewActor creates an actor at the origin facing +X.
func NewActor(kind Kind, stepMove, stepTurn float64) *Actor {
	return &Actor{
		kind:     kind,
		stepMove: stepMove,
		stepTurn: stepTurn,
	}
}

// Kind returns the actor's role.
func (a *Actor) Kind() Kind {
	return a.kind
}

// Position returns the actor's current position.
func (a *Actor) Position() r2.Vec {
	return a.pos
}

// Heading returns the actor's heading in degrees.
func (a *Actor) Heading() float64 {
	return a.heading
}

// Advance moves the actor distance units along its heading.
// Negative distances move backwards.
func (a *Actor) Advance(distance float64) {
	rad := a.heading * math.Pi / 180
	dir := r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)}
	a.pos = r2.Add(a.pos, r2.Scale(distance, dir))
}

// Turn rotates the heading by delta degrees in the given direction.
func (a *Actor) Turn(delta float64, dir Rotation) {
	a.heading = normalizeDegrees(a.heading + float64(dir)*delta)
}

// Teleport sets the absolute position, leaving the heading untouched.
func (a *Actor) Teleport(x, y float64) {
	a.pos = r2.Vec{X: x, Y: y}
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
