// Package registry maps game IDs to factories. Game packages register from
// init, so the CLI only needs a blank import to make a game playable.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a frame-driven game. Implementations hold no terminal state; the
// host feeds them time and keys and hands them a screen to draw into.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh session. cfg.Seed drives all randomness.
	Reset(cfg core.RuntimeConfig)

	// Update runs one frame. elapsed is in seconds since the previous frame
	// and keys are the keys pressed during it.
	Update(elapsed float64, keys core.KeyState) core.FrameResult

	Render(dst *core.Screen)
	State() core.GameState
}

// Configurable is implemented by games that read a YAML config file.
type Configurable interface {
	// LoadConfig applies the config at path, or the default search path when
	// path is empty, and returns where the config was found.
	LoadConfig(path string) (source string, err error)
}

// GameInfo describes a registered game for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under id. The title is read once from a throwaway
// instance. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}
