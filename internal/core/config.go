package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the host (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Event is something notable that happened during a frame.
// The platform uses events for logging; games never depend on them being read.
type Event int

const (
	EventTick Event = iota + 1
	EventAppleEaten
	EventGameOver
	EventRestart
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventTick:
		return "tick"
	case EventAppleEaten:
		return "apple_eaten"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// FrameResult is returned by Game.Update() after each frame.
type FrameResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the event occurred during the frame.
func (r FrameResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
