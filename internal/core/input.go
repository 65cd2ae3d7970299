package core

// Action is a semantic game command, abstracted from physical keys.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, A - shift one lane left
	ActionRight           // Right arrow, D - shift one lane right
	ActionPause           // P, Escape - pause/resume
	ActionContinue        // Enter, Space - next level or play again
	ActionRestart         // R - full restart after the run ended
	ActionStats           // Tab - open/close the stats panel
	ActionQuit            // Q, Ctrl+C
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
	case ActionPause:
		return "Pause"
	case ActionContinue:
		return "Continue"
	case ActionRestart:
		return "Restart"
	case ActionStats:
		return "Stats"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two ticks.
// Lane moves are edge-triggered, so each press is counted.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make([]Action, 0, 4)}
}

// Push appends an action to the frame.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the action was triggered at least once this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
