package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionQuit         // Q, Esc, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action is one of the four movement intents.
func (a Action) IsDirectional() bool {
	return a >= ActionLeft && a <= ActionDown
}
