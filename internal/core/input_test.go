package core

import "testing"

func TestNewInputCountsSignals(t *testing.T) {
	in := NewInput(SignalLeft, SignalRun, SignalLeft)

	if !in.Has(SignalLeft) || !in.Has(SignalRun) {
		t.Errorf("NewInput should hold Left and Run, got %s", in)
	}
	if in.Has(SignalRight) {
		t.Error("NewInput should not hold Right")
	}
	if in.ActiveCount != 2 {
		t.Errorf("ActiveCount = %d, expected 2", in.ActiveCount)
	}
}

func TestEmptyInput(t *testing.T) {
	in := NewInput()
	if !in.Empty() {
		t.Error("NewInput() should be empty")
	}
	if in.ActiveCount != 0 {
		t.Errorf("ActiveCount = %d, expected 0", in.ActiveCount)
	}
	if in.String() != "none" {
		t.Errorf("String() = %q, expected %q", in.String(), "none")
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		text     string
		expected Input
		ok       bool
	}{
		{"", NewInput(), true},
		{"-", NewInput(), true},
		{"R", NewInput(SignalRight), true},
		{"left+run", NewInput(SignalLeft, SignalRun), true},
		{"R+S+U", NewInput(SignalRight, SignalRun, SignalUp), true},
		{"jump", NewInput(SignalUp), true},
		{"fly", Input{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			in, ok := ParseInput(tc.text)
			if ok != tc.ok {
				t.Fatalf("ParseInput(%q) ok = %v, expected %v", tc.text, ok, tc.ok)
			}
			if in != tc.expected {
				t.Errorf("ParseInput(%q) = %s, expected %s", tc.text, in, tc.expected)
			}
		})
	}
}

func TestInputStringRoundTrip(t *testing.T) {
	in := NewInput(SignalRight, SignalUp, SignalRun)
	parsed, ok := ParseInput(in.String())
	if !ok || parsed != in {
		t.Errorf("ParseInput(%q) = %s, %v", in.String(), parsed, ok)
	}
}

func TestInputFrameAnyKey(t *testing.T) {
	f := NewInputFrame()
	if f.AnyKey() {
		t.Error("empty frame should not report a key")
	}

	f.Set(ActionConfirm)
	if !f.AnyKey() {
		t.Error("frame with an action should report a key")
	}

	f.Clear()
	if f.AnyKey() || f.Has(ActionConfirm) {
		t.Error("Clear should drop actions")
	}

	f = FrameOf(NewInput(SignalUp))
	if !f.AnyKey() {
		t.Error("frame with a held signal should report a key")
	}
}

func TestActionString(t *testing.T) {
	if ActionPause.String() != "Pause" {
		t.Errorf("ActionPause.String() = %q", ActionPause.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
