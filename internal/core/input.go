package core

// Key identifies a raw key whose pressed state the host reports each frame.
// Games query keys rather than terminal escape sequences so the platform can
// remap bindings without touching game logic.
type Key int

const (
	KeyNone    Key = iota
	KeyLeft        // Left arrow, A
	KeyRight       // Right arrow, D
	KeyUp          // Up arrow, W
	KeyDown        // Down arrow, S
	KeyGrid        // G - toggle the grid overlay
	KeyRestart     // Space, R - restart after game over
	KeyQuit        // Q, Ctrl+C - exit
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyGrid:
		return "Grid"
	case KeyRestart:
		return "Restart"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyState is the set of keys held during one frame.
type KeyState struct {
	pressed map[Key]bool
}

// NewKeyState creates an empty key state.
func NewKeyState(keys ...Key) KeyState {
	s := KeyState{pressed: make(map[Key]bool)}
	for _, k := range keys {
		s.Press(k)
	}
	return s
}

// Press marks a key as held for this frame.
func (s *KeyState) Press(k Key) {
	if k == KeyNone {
		return
	}
	if s.pressed == nil {
		s.pressed = make(map[Key]bool)
	}
	s.pressed[k] = true
}

// IsPressed reports whether the key is held this frame.
func (s KeyState) IsPressed(k Key) bool {
	return s.pressed[k]
}

// Clear releases every key for the next frame.
func (s *KeyState) Clear() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
}

// Clone creates a copy of this key state. Hosts pass a clone to the game so
// clearing for the next frame does not touch what the game saw.
func (s KeyState) Clone() KeyState {
	clone := NewKeyState()
	for k, v := range s.pressed {
		clone.pressed[k] = v
	}
	return clone
}
