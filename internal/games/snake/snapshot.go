package snake

// Snapshot captures the complete game state for determinism testing and debug views.
type Snapshot struct {
	Tick         uint64
	State        State
	Score        int
	Head         Point
	PrevHead     Point
	Dir          Direction
	DirectionSet bool
	Timer        float64
	Body         []Point
	Apple        Apple
	ShowGrid     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.ticks,
		State:        g.state,
		Score:        g.score,
		Head:         g.head,
		PrevHead:     g.prevHead,
		Dir:          g.direction,
		DirectionSet: g.directionSet,
		Timer:        g.timer,
		Body:         g.body.Segments(),
		Apple:        g.apple,
		ShowGrid:     g.showGrid,
	}
}
