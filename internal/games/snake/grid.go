package snake

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCellSize is returned when the cell size or world extents are not positive.
	ErrInvalidCellSize = errors.New("snake: cell size and world extents must be positive")
	// ErrCellSizeMismatch is returned when the cell size does not divide the world extents.
	ErrCellSizeMismatch = errors.New("snake: cell size must divide the world extents")
	// ErrGridTooSmall is returned when the apple spawner could never find a
	// cell away from the head.
	ErrGridTooSmall = errors.New("snake: grid too small to place apples")
)

// Point is a position in world units.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid is the fixed-cell playfield. Every dynamic entity sits on a multiple of
// CellSize inside [0, Width) x [0, Height).
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid validates the world extents against the cell size.
func NewGrid(width, height, cellSize int) (Grid, error) {
	if cellSize <= 0 || width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: world %dx%d, cell %d", ErrInvalidCellSize, width, height, cellSize)
	}
	if width%cellSize != 0 || height%cellSize != 0 {
		return Grid{}, fmt.Errorf("%w: world %dx%d, cell %d", ErrCellSizeMismatch, width, height, cellSize)
	}

	g := Grid{Width: width, Height: height, CellSize: cellSize}
	// The spawner samples all but the last column and row.
	if (g.Cols()-1)*(g.Rows()-1) < 2 {
		return Grid{}, fmt.Errorf("%w: %dx%d cells", ErrGridTooSmall, g.Cols(), g.Rows())
	}
	return g, nil
}

// Cols returns the number of cells across.
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cells down.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Contains reports whether p lies inside the world.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds a coordinate that left the axis back in from the opposite edge.
func Wrap(pos, extent, cellSize int) int {
	if pos >= extent {
		return 0
	}
	if pos < 0 {
		return extent - cellSize
	}
	return pos
}

// WrapPoint applies Wrap to each axis independently.
func (g Grid) WrapPoint(p Point) Point {
	return Point{
		X: Wrap(p.X, g.Width, g.CellSize),
		Y: Wrap(p.Y, g.Height, g.CellSize),
	}
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Delta returns the offset of one step of the given length.
// World y grows upward.
func (d Direction) Delta(step int) Point {
	switch d {
	case DirRight:
		return Point{X: step}
	case DirLeft:
		return Point{X: -step}
	case DirUp:
		return Point{Y: step}
	default:
		return Point{Y: -step}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
