package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Enter, Space - take the highlighted upgrade
	ActionChoice1        // 1 - take the first upgrade
	ActionChoice2        // 2
	ActionChoice3        // 3
	ActionRestart        // R - restart after game over
	ActionPause          // P, Escape
	ActionQuit           // Q, Ctrl+C
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
	case ActionChoice1:
		return "Choice1"
	case ActionChoice2:
		return "Choice2"
	case ActionChoice3:
		return "Choice3"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Choice returns the 0-based upgrade slot for a choice action.
func (a Action) Choice() (int, bool) {
	switch a {
	case ActionChoice1:
		return 0, true
	case ActionChoice2:
		return 1, true
	case ActionChoice3:
		return 2, true
	}
	return 0, false
}

// Click is a mouse press in screen cells.
type Click struct {
	X, Y int
	Held bool // Button still down (drag)
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Click is the latest mouse press this frame, if any.
	Click *Click
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
	return f.Actions[a]
}

// SetClick records a mouse press at a screen cell.
func (f *InputFrame) SetClick(x, y int, held bool) {
	f.Click = &Click{X: x, Y: y, Held: held}
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Click = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Click != nil {
		c := *f.Click
		clone.Click = &c
	}
	return clone
}
