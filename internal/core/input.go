package core

// Action represents a discrete input event, abstracted from physical key presses.
// Shells deliver at most one Action per key-down; held keys do not repeat.
type Action int

const (
	ActionNone    Action = iota
	ActionPrimary        // Space, Up, W, Enter - start, jump (flap), restart
	ActionQuit           // Q, Esc, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction is the inverse of Action.String.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "None":
		return ActionNone, true
	case "Primary":
		return ActionPrimary, true
	case "Quit":
		return ActionQuit, true
	}
	return ActionNone, false
}
