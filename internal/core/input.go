package core

// Action represents a semantic input action, abstracted from physical key
// presses. The platform maps keys to actions; the simulation only sees these.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, K
	ActionDown           // S, Down arrow, J
	ActionLeft           // A, Left arrow, H
	ActionRight          // D, Right arrow, L
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit session
	ActionPause          // P - pause/unpause
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
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}
