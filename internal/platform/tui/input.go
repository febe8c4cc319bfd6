package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/taekwondino/internal/core"
)

// DefaultHoldTicks is how long a key press keeps its signal held. Terminals
// only report presses (and auto-repeat), so a hold is approximated by
// keeping the signal alive until the next repeat arrives.
const DefaultHoldTicks = 8

// KeyboardSource turns key presses into per-tick input frames.
type KeyboardSource struct {
	keys      KeyMap
	holdTicks int
	held      map[core.Signal]int // Remaining ticks per held signal
	actions   map[core.Action]bool
}

// NewKeyboardSource creates a source with the given bindings. holdTicks <= 0
// uses DefaultHoldTicks.
func NewKeyboardSource(keys KeyMap, holdTicks int) *KeyboardSource {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyboardSource{
		keys:      keys,
		holdTicks: holdTicks,
		held:      make(map[core.Signal]int),
		actions:   make(map[core.Action]bool),
	}
}

// HandleKey records a key press and reports the action it maps to, if any.
// Quit and Help are reported but never reach the frame.
func (k *KeyboardSource) HandleKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.keys.Help):
		return core.ActionNone

	case key.Matches(msg, k.keys.RunLeft):
		k.hold(core.SignalLeft, core.SignalRight, true)
	case key.Matches(msg, k.keys.RunRight):
		k.hold(core.SignalRight, core.SignalLeft, true)
	case key.Matches(msg, k.keys.Left):
		k.hold(core.SignalLeft, core.SignalRight, false)
	case key.Matches(msg, k.keys.Right):
		k.hold(core.SignalRight, core.SignalLeft, false)
	case key.Matches(msg, k.keys.Jump):
		k.held[core.SignalUp] = k.holdTicks
	case key.Matches(msg, k.keys.Down):
		k.held[core.SignalDown] = k.holdTicks

	case key.Matches(msg, k.keys.Confirm):
		k.actions[core.ActionConfirm] = true
		return core.ActionConfirm
	case key.Matches(msg, k.keys.Pause):
		k.actions[core.ActionPause] = true
		return core.ActionPause
	case key.Matches(msg, k.keys.Restart):
		k.actions[core.ActionRestart] = true
		return core.ActionRestart
	}
	return core.ActionNone
}

// hold presses a direction, releasing the opposite one. A plain direction
// press drops the run modifier.
func (k *KeyboardSource) hold(dir, opposite core.Signal, run bool) {
	k.held[dir] = k.holdTicks
	delete(k.held, opposite)
	if run {
		k.held[core.SignalRun] = k.holdTicks
	} else {
		delete(k.held, core.SignalRun)
	}
}

// Frame returns the input for the current tick and consumes the one-shot
// actions. ActiveCount is the number of held signals.
func (k *KeyboardSource) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for s, ticks := range k.held {
		if ticks > 0 {
			f.Held.Set(s)
		}
	}
	for a := range k.actions {
		f.Set(a)
		delete(k.actions, a)
	}
	return f
}

// Tick ages every hold by one tick.
func (k *KeyboardSource) Tick() {
	for s, ticks := range k.held {
		if ticks <= 1 {
			delete(k.held, s)
			continue
		}
		k.held[s] = ticks - 1
	}
}

// Release drops every held signal and pending action.
func (k *KeyboardSource) Release() {
	for s := range k.held {
		delete(k.held, s)
	}
	for a := range k.actions {
		delete(k.actions, a)
	}
}
