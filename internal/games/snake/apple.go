package snake

// Random yields uniform integers in [0, n). *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Apple is the single collectible on the board.
type Apple struct {
	Pos       Point
	Available bool
}

// Spawner picks apple positions on a grid.
//
// Columns are drawn from [0, cols-1) and rows from [0, rows-1), so the last
// column and row never receive an apple. Only the head is avoided; an apple
// may land under a body segment.
type Spawner struct {
	grid Grid
	rng  Random
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(grid Grid, rng Random) Spawner {
	return Spawner{grid: grid, rng: rng}
}

// Place draws cells until one differs from head.
func (s Spawner) Place(head Point) Point {
	for {
		p := Point{
			X: s.rng.Intn(s.grid.Cols()-1) * s.grid.CellSize,
			Y: s.rng.Intn(s.grid.Rows()-1) * s.grid.CellSize,
		}
		if p != head {
			return p
		}
	}
}
