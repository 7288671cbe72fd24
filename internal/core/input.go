package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform owns the keycode mapping; the simulation only
// sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up
	ActionDown           // S, Down arrow - move cursor down
	ActionLeft           // A, Left arrow - move cursor left
	ActionRight          // D, Right arrow - move cursor right
	ActionFire           // Space - launch an interceptor
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back / quit request
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
	case ActionFire:
		return "Fire"
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

// InputFrame represents the input state for a single simulation tick.
// It contains all actions triggered during this frame.
type InputFrame struct {
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

// Axes is the discretized input contract consumed by the cursor
// movement step: two axis scalars in {-1, 0, 1} and a fire flag.
// Well-formed by construction, no validation needed.
type Axes struct {
	X    float64
	Y    float64
	Fire bool
}

// AxesFrom reduces an input frame to axis intent. Opposing directions
// pressed in the same frame cancel out.
func AxesFrom(f InputFrame) Axes {
	var a Axes
	if f.Has(ActionLeft) {
		a.X -= 1
	}
	if f.Has(ActionRight) {
		a.X += 1
	}
	if f.Has(ActionDown) {
		a.Y -= 1
	}
	if f.Has(ActionUp) {
		a.Y += 1
	}
	a.Fire = f.Has(ActionFire)
	return a
}
