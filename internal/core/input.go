package core

// Action is a player intent, independent of the key or button behind it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // move the tube cursor left
	ActionRight          // move the tube cursor right
	ActionSelect         // tap the tube under the cursor
	ActionRestart        // reshuffle and start over
	ActionBack           // leave for the home screen
	ActionQuit           // exit the program
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionSelect:  "Select",
	ActionRestart: "Restart",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame collects everything the player did between two ticks.
// The zero value is an empty frame.
type InputFrame struct {
	actions uint32 // bit n set: Action(n) was triggered

	// Taps lists tube indices tapped directly (number keys, mouse clicks)
	// in the order they happened.
	Taps []int
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered.
func (f *InputFrame) Set(a Action) {
	if a != ActionNone {
		f.actions |= 1 << a
	}
}

// Tap records a tap on the tube at index.
func (f *InputFrame) Tap(index int) {
	f.Taps = append(f.Taps, index)
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.actions&(1<<a) != 0
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return f.actions == 0 && len(f.Taps) == 0
}

// Clear empties the frame, keeping the tap buffer for reuse.
func (f *InputFrame) Clear() {
	f.actions = 0
	f.Taps = f.Taps[:0]
}
