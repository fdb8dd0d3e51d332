package snake

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name                  string
		pos, extent, cellSize int
		expected              int
	}{
		{"in range", 320, 640, 32, 320},
		{"origin", 0, 640, 32, 0},
		{"last cell", 608, 640, 32, 608},
		{"past right edge", 640, 640, 32, 0},
		{"past left edge", -32, 640, 32, 608},
		{"past top edge", 480, 480, 32, 0},
		{"past bottom edge", -32, 480, 32, 448},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Wrap(tc.pos, tc.extent, tc.cellSize); got != tc.expected {
				t.Errorf("Wrap(%d, %d, %d) = %d, expected %d", tc.pos, tc.extent, tc.cellSize, got, tc.expected)
			}
		})
	}
}

func TestWrapKeepsEveryStepInBounds(t *testing.T) {
	grid, err := NewGrid(640, 480, 32)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	for _, dir := range []Direction{DirRight, DirLeft, DirUp, DirDown} {
		for y := 0; y < grid.Height; y += grid.CellSize {
			for x := 0; x < grid.Width; x += grid.CellSize {
				p := grid.WrapPoint(Point{X: x, Y: y}.Add(dir.Delta(grid.CellSize)))
				if !grid.Contains(p) {
					t.Fatalf("step %s from (%d, %d) left the grid: %+v", dir, x, y, p)
				}
				if p.X%grid.CellSize != 0 || p.Y%grid.CellSize != 0 {
					t.Fatalf("step %s from (%d, %d) is off the cell lattice: %+v", dir, x, y, p)
				}
			}
		}
	}
}

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name                  string
		width, height, cellSz int
		err                   error
	}{
		{"classic", 640, 480, 32, nil},
		{"smallest usable", 96, 64, 32, nil},
		{"zero cell", 640, 480, 0, ErrInvalidCellSize},
		{"negative width", -640, 480, 32, ErrInvalidCellSize},
		{"cell does not divide width", 650, 480, 32, ErrCellSizeMismatch},
		{"cell does not divide height", 640, 490, 32, ErrCellSizeMismatch},
		{"single column", 32, 480, 32, ErrGridTooSmall},
		{"two by two", 64, 64, 32, ErrGridTooSmall},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.width, tc.height, tc.cellSz)
			if tc.err == nil {
				if err != nil {
					t.Fatalf("NewGrid() = %v, expected nil", err)
				}
				if g.Cols()*g.CellSize != tc.width || g.Rows()*g.CellSize != tc.height {
					t.Errorf("grid %dx%d cells does not cover world", g.Cols(), g.Rows())
				}
				return
			}
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid() = %v, expected %v", err, tc.err)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirRight: DirLeft,
		DirLeft:  DirRight,
		DirUp:    DirDown,
		DirDown:  DirUp,
	}
	for d, opp := range pairs {
		if d.Opposite() != opp {
			t.Errorf("%s.Opposite() = %s, expected %s", d, d.Opposite(), opp)
		}
		if d.Delta(32).Add(opp.Delta(32)) != (Point{}) {
			t.Errorf("%s and %s deltas should cancel", d, opp)
		}
	}
}

func TestDirectionDeltaYUp(t *testing.T) {
	if DirUp.Delta(32) != (Point{Y: 32}) {
		t.Errorf("up should increase y, got %+v", DirUp.Delta(32))
	}
	if DirRight.Delta(32) != (Point{X: 32}) {
		t.Errorf("right should increase x, got %+v", DirRight.Delta(32))
	}
}
