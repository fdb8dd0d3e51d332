package core

import "testing"

func held(s KeyState) int {
	return len(s.pressed)
}

func TestKeyStatePressAndClear(t *testing.T) {
	s := NewKeyState()
	if held(s) != 0 {
		t.Fatal("New key state should be empty")
	}

	s.Press(KeyLeft)
	s.Press(KeyNone)

	if !s.IsPressed(KeyLeft) {
		t.Error("KeyLeft should be pressed")
	}
	if s.IsPressed(KeyNone) {
		t.Error("KeyNone should never be recorded")
	}
	if s.IsPressed(KeyRight) {
		t.Error("KeyRight was never pressed")
	}

	s.Clear()
	if held(s) != 0 || s.IsPressed(KeyLeft) {
		t.Error("Clear should release every key")
	}
}

func TestKeyStateZeroValue(t *testing.T) {
	var s KeyState
	if s.IsPressed(KeyUp) {
		t.Error("Zero value should report nothing pressed")
	}
	s.Press(KeyUp)
	if !s.IsPressed(KeyUp) {
		t.Error("Press on zero value should allocate and record the key")
	}
}

func TestKeyStateClone(t *testing.T) {
	s := NewKeyState(KeyUp, KeyGrid)
	clone := s.Clone()
	s.Clear()

	if !clone.IsPressed(KeyUp) || !clone.IsPressed(KeyGrid) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyLeft:    "Left",
		KeyRestart: "Restart",
		Key(99):    "Unknown",
	}
	for k, want := range tests {
		if k.String() != want {
			t.Errorf("Key(%d).String() = %q, expected %q", int(k), k.String(), want)
		}
	}
}

func TestFrameResultHas(t *testing.T) {
	r := FrameResult{Events: []Event{EventTick, EventAppleEaten}}
	if !r.Has(EventAppleEaten) {
		t.Error("Has should find recorded event")
	}
	if r.Has(EventGameOver) {
		t.Error("Has should not report missing event")
	}
	if EventGameOver.String() != "game_over" {
		t.Errorf("EventGameOver.String() = %q", EventGameOver.String())
	}
}
