package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move detector left (held)
	ActionRight          // Right arrow, D - move detector right (held)
	ActionAnswer1        // 1 - first quiz option
	ActionAnswer2        // 2 - second quiz option
	ActionAnswer3        // 3 - third quiz option
	ActionAnswer4        // 4 - fourth quiz option
	ActionConfirm        // Enter, Space - skip intro/countdown
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart session
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionAnswer1:
		return "Answer1"
	case ActionAnswer2:
		return "Answer2"
	case ActionAnswer3:
		return "Answer3"
	case ActionAnswer4:
		return "Answer4"
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

// AnswerActions lists the quiz answer actions in option order.
var AnswerActions = [4]Action{ActionAnswer1, ActionAnswer2, ActionAnswer3, ActionAnswer4}

// AnswerIndex returns the zero-based option index selected in this frame,
// or -1 if no answer action is set. The lowest option wins when several are set.
func (f InputFrame) AnswerIndex() int {
	for i, a := range AnswerActions {
		if f.Has(a) {
			return i
		}
	}
	return -1
}

// InputFrame represents the input state for the player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
