package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move forward
	ActionDown           // S, Down arrow - move backward
	ActionLeft           // A, Left arrow - turn left
	ActionRight          // D, Right arrow - turn right
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Escape - leave the game for the menu
	ActionRestart        // R key - restart after a session ends
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action steers the player.
func (a Action) IsMovement() bool {
	return a >= ActionUp && a <= ActionRight
}
