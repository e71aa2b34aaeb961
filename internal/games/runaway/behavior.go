package runaway

import "gonum.org/v1/gonum/spatial/r2"

// Move is a single movement primitive.
type Move int

const (
	MoveForward Move = iota + 1
	MoveBackward
	MoveTurnLeft
	MoveTurnRight
)

func (m Move) String() string {
	switch m {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case MoveTurnLeft:
		return "left"
	case MoveTurnRight:
		return "right"
	default:
		return "none"
	}
}

// Command is the ordered list of moves an actor performs in one tick.
// An empty command leaves the actor where it is.
type Command struct {
	Moves []Move
}

// Apply performs the moves with the actor's own step sizes, clamping the
// actor to bounds after each move.
func (c Command) Apply(a *Actor, bounds Arena) {
	for _, m := range c.Moves {
		switch m {
		case MoveForward:
			a.Advance(a.stepMove)
		case MoveBackward:
			a.Advance(-a.stepMove)
		case MoveTurnLeft:
			a.Turn(a.stepTurn, CounterClockwise)
		case MoveTurnRight:
			a.Turn(a.stepTurn, Clockwise)
		}
		bounds.Clamp(a)
	}
}

// Behavior decides what an actor does on a tick, given its counterpart's
// position and heading.
type Behavior interface {
	Decide(self *Actor, counterpart r2.Vec, counterpartHeading float64) Command
}
