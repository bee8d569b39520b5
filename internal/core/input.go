package core

// Action is a semantic game action, abstracted from physical key presses.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move edit cursor up
	ActionDown           // S, Down arrow - move edit cursor down
	ActionLeft           // A, Left arrow - move edit cursor left
	ActionRight          // D, Right arrow - move edit cursor right
	ActionToggle         // Space - toggle the cell under the cursor
	ActionConfirm        // Enter - depart / next stage / start
	ActionBack           // B, Escape - back to title
	ActionRestart        // R - retry after death
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause a run
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionToggle:  "Toggle",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.bits |= 1 << a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}
