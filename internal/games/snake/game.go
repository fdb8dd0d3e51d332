// Package snake implements the classic single-screen Snake game.
//
// The snake moves one cell per fixed movement tick on a wrapping grid, eats
// apples to grow and score, and the game ends when the head runs into the body.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// State is the game state machine.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Settings holds the tunable gameplay values.
type Settings struct {
	Grid           Grid
	MoveInterval   float64 // Seconds between movement ticks
	PointsPerApple int
	ShowGrid       bool // Initial state of the grid overlay
}

// DefaultSettings returns the classic 640x480 board with 32-unit cells.
func DefaultSettings() Settings {
	s, err := SettingsFromConfig(config.DefaultSnakeConfig())
	if err != nil {
		panic(fmt.Sprintf("snake: default config is invalid: %v", err))
	}
	return s
}

// SettingsFromConfig converts a loaded config into game settings.
func SettingsFromConfig(cfg config.SnakeConfig) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	grid, err := NewGrid(cfg.World.Width, cfg.World.Height, cfg.Grid.CellSize)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Grid:           grid,
		MoveInterval:   cfg.Movement.Interval,
		PointsPerApple: cfg.Scoring.PointsPerApple,
		ShowGrid:       cfg.Grid.ShowGrid,
	}, nil
}

// Game implements the Snake game. All mutable gameplay state lives here and is
// only changed from Update, Reset and Restart.
type Game struct {
	settings Settings
	spawner  Spawner
	state    State
	ticks    uint64
	score    int
	showGrid bool

	// Movement
	head         Point
	prevHead     Point // Head position before the last tick
	direction    Direction
	directionSet bool    // Latched once a direction change is accepted; cleared each tick
	timer        float64 // Countdown to the next tick

	body  Body
	apple Apple

	events []core.Event
}

// New creates a Snake game with the default settings.
func New() *Game {
	g, err := NewWithSettings(DefaultSettings())
	if err != nil {
		panic(err)
	}
	return g
}

// NewWithSettings creates a Snake game with custom settings.
func NewWithSettings(s Settings) (*Game, error) {
	g := &Game{}
	if err := g.configure(s); err != nil {
		return nil, err
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// LoadConfig loads settings from a YAML file (or the default search path when
// path is empty) and restarts the game with them. It returns the config source.
func (g *Game) LoadConfig(path string) (string, error) {
	cfg, source, err := config.LoadSnake(path)
	if err != nil {
		return source, err
	}
	s, err := SettingsFromConfig(cfg)
	if err != nil {
		return source, fmt.Errorf("config %s: %w", source, err)
	}
	if err := g.configure(s); err != nil {
		return source, err
	}
	g.Restart()
	return source, nil
}

func (g *Game) configure(s Settings) error {
	grid, err := NewGrid(s.Grid.Width, s.Grid.Height, s.Grid.CellSize)
	if err != nil {
		return err
	}
	if s.MoveInterval <= 0 {
		return fmt.Errorf("snake: move interval must be positive, got %v", s.MoveInterval)
	}
	s.Grid = grid
	g.settings = s
	g.showGrid = s.ShowGrid
	if g.spawner.rng != nil {
		g.spawner = NewSpawner(grid, g.spawner.rng)
	}
	return nil
}

// Settings returns the active settings.
func (g *Game) Settings() Settings {
	return g.settings
}

// Reset seeds the RNG and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.spawner = NewSpawner(g.settings.Grid, rand.New(rand.NewSource(cfg.Seed)))
	g.showGrid = g.settings.ShowGrid
	g.ticks = 0
	g.Restart()
	g.events = g.events[:0]
}

// Restart returns every entity to its starting state in place.
func (g *Game) Restart() {
	g.state = StatePlaying
	g.body.Clear()
	g.direction = DirRight
	g.directionSet = false
	g.timer = g.settings.MoveInterval
	g.head = Point{}
	g.prevHead = Point{}
	g.apple.Available = false
	g.score = 0
	g.emit(core.EventRestart)
}

// Update advances the game by one rendered frame. elapsed is the time since
// the previous frame, in the same unit as the move interval.
func (g *Game) Update(elapsed float64, keys core.KeyState) core.FrameResult {
	g.events = g.events[:0]

	switch g.state {
	case StatePlaying:
		g.queryInput(keys)
		g.toggleGrid(keys)
		g.advance(elapsed)
		// Pickup runs every frame, not only on ticks.
		g.checkAppleCollision()
		g.placeApple()
	case StateGameOver:
		if keys.IsPressed(core.KeyRestart) {
			g.Restart()
		}
	}

	events := make([]core.Event, len(g.events))
	copy(events, g.events)
	return core.FrameResult{State: g.State(), Events: events}
}

// advance counts the timer down and runs a tick when it expires.
func (g *Game) advance(elapsed float64) {
	if elapsed > 0 {
		g.timer -= elapsed
	}
	if g.timer > 0 {
		return
	}
	g.timer = g.settings.MoveInterval
	g.tick()
}

// tick performs one discrete grid step.
func (g *Game) tick() {
	g.ticks++
	g.prevHead = g.head
	g.head = g.settings.Grid.WrapPoint(g.head.Add(g.direction.Delta(g.settings.Grid.CellSize)))
	g.body.Follow(g.prevHead)
	g.emit(core.EventTick)

	if g.body.Occupies(g.head) {
		g.state = StateGameOver
		g.emit(core.EventGameOver)
	}
	g.directionSet = false
}

// checkAppleCollision consumes the apple when the head is on it. The new
// segment goes where the head was before the last tick.
func (g *Game) checkAppleCollision() {
	if !g.apple.Available || g.apple.Pos != g.head {
		return
	}
	g.body.Grow(g.prevHead)
	g.score += g.settings.PointsPerApple
	g.apple.Available = false
	g.emit(core.EventAppleEaten)
}

// placeApple spawns a new apple when none is on the board.
func (g *Game) placeApple() {
	if g.apple.Available {
		return
	}
	g.apple = Apple{Pos: g.spawner.Place(g.head), Available: true}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
	}
}
