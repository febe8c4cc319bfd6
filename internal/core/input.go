package core

import (
	"math/bits"
	"strings"
)

// Signal is a logical directional/action signal held during a frame.
// Signals are bit flags so a frame's held set fits in one value.
type Signal uint8

const (
	SignalLeft  Signal = 1 << iota // ArrowLeft
	SignalRight                    // ArrowRight
	SignalUp                       // ArrowUp - jump
	SignalDown                     // ArrowDown
	SignalRun                      // Shift - run modifier
	SignalAux                      // Auxiliary signal, passed through untouched
)

// String returns a human-readable name for a single signal.
func (s Signal) String() string {
	switch s {
	case SignalLeft:
		return "Left"
	case SignalRight:
		return "Right"
	case SignalUp:
		return "Up"
	case SignalDown:
		return "Down"
	case SignalRun:
		return "Run"
	case SignalAux:
		return "Aux"
	default:
		return "Unknown"
	}
}

// allSignals lists signals in display order.
var allSignals = []Signal{SignalLeft, SignalRight, SignalUp, SignalDown, SignalRun, SignalAux}

// Input is the frame-scoped set of held signals plus the number of keys
// currently pressed. It has no identity beyond the frame it was built for.
type Input struct {
	Signals     Signal
	ActiveCount int
}

// NewInput builds an input holding exactly the given signals.
// ActiveCount is the number of distinct signals, as if each was one key.
func NewInput(signals ...Signal) Input {
	var in Input
	for _, s := range signals {
		in.Set(s)
	}
	return in
}

// Has returns true if the signal is held.
func (in Input) Has(s Signal) bool {
	return in.Signals&s != 0
}

// Set marks a signal as held and keeps ActiveCount in step.
func (in *Input) Set(s Signal) {
	if in.Has(s) {
		return
	}
	in.Signals |= s
	in.ActiveCount = bits.OnesCount8(uint8(in.Signals))
}

// Empty returns true if no signal is held.
func (in Input) Empty() bool {
	return in.Signals == 0
}

// String lists held signals, e.g. "Left+Run".
func (in Input) String() string {
	if in.Empty() {
		return "none"
	}
	parts := make([]string, 0, len(allSignals))
	for _, s := range allSignals {
		if in.Has(s) {
			parts = append(parts, s.String())
		}
	}
	return strings.Join(parts, "+")
}

// ParseInput parses the String form back into an Input.
// Unknown names are reported with ok=false.
func ParseInput(text string) (Input, bool) {
	var in Input
	text = strings.TrimSpace(text)
	if text == "" || text == "none" || text == "-" {
		return in, true
	}
	for _, part := range strings.Split(text, "+") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "left", "l":
			in.Set(SignalLeft)
		case "right", "r":
			in.Set(SignalRight)
		case "up", "u", "jump":
			in.Set(SignalUp)
		case "down", "d":
			in.Set(SignalDown)
		case "run", "s", "shift":
			in.Set(SignalRun)
		case "aux", "v":
			in.Set(SignalAux)
		default:
			return Input{}, false
		}
	}
	return in, true
}

// Action represents a platform-level command, separate from the in-game
// signals. The platform maps keys to these; the game loop consumes them.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
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

// InputFrame is everything the platform collected for one simulation tick:
// the held signals and any one-shot actions triggered during the frame.
type InputFrame struct {
	Held    Input
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf wraps held signals into a frame without actions.
func FrameOf(held Input) InputFrame {
	f := NewInputFrame()
	f.Held = held
	return f
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

// AnyKey returns true if any signal is held or any action fired.
func (f InputFrame) AnyKey() bool {
	if f.Held.ActiveCount > 0 {
		return true
	}
	for _, v := range f.Actions {
		if v {
			return true
		}
	}
	return false
}

// Clear resets actions and held signals for the next frame.
func (f *InputFrame) Clear() {
	f.Held = Input{}
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
