package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// steerKeys lists the direction keys in the order they are checked.
var steerKeys = [...]struct {
	key core.Key
	dir Direction
}{
	{core.KeyLeft, DirLeft},
	{core.KeyRight, DirRight},
	{core.KeyUp, DirUp},
	{core.KeyDown, DirDown},
}

// queryInput proposes a direction for every held direction key.
func (g *Game) queryInput(keys core.KeyState) {
	for _, sk := range steerKeys {
		if keys.IsPressed(sk.key) {
			g.updateDirection(sk.dir)
		}
	}
}

// updateDirection applies a proposal unless a change was already accepted this
// tick or it would reverse the snake onto itself. A rejected reversal leaves
// the latch open for a later key.
func (g *Game) updateDirection(dir Direction) bool {
	if g.directionSet || dir == g.direction.Opposite() {
		return false
	}
	g.direction = dir
	g.directionSet = true
	return true
}

// toggleGrid flips the grid overlay when its key is held.
func (g *Game) toggleGrid(keys core.KeyState) {
	if keys.IsPressed(core.KeyGrid) {
		g.showGrid = !g.showGrid
	}
}
