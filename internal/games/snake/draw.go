package snake

import "strconv"

// Text shown by the game.
const (
	ScoreText    = "Score: "
	GameOverText = "Game Over... Tap space to restart!"
)

// Sprite is an opaque reference the renderer resolves to an image or glyph.
type Sprite int

const (
	SpriteGrid Sprite = iota
	SpriteHead
	SpriteBody
	SpriteApple
)

// TextSlot names where a piece of text belongs on screen.
type TextSlot int

const (
	TextScore TextSlot = iota
	TextGameOver
)

// Surface receives one-way draw commands. Positions are in world units.
type Surface interface {
	DrawSprite(s Sprite, at Point)
	DrawText(slot TextSlot, text string)
}

// Draw emits the current frame. Segments sharing the head's cell are skipped.
func (g *Game) Draw(dst Surface) {
	if g.showGrid {
		cell := g.settings.Grid.CellSize
		for y := 0; y < g.settings.Grid.Height; y += cell {
			for x := 0; x < g.settings.Grid.Width; x += cell {
				dst.DrawSprite(SpriteGrid, Point{X: x, Y: y})
			}
		}
	}

	dst.DrawSprite(SpriteHead, g.head)
	for i := range g.body.Len() {
		if seg := g.body.At(i); seg != g.head {
			dst.DrawSprite(SpriteBody, seg)
		}
	}
	if g.apple.Available {
		dst.DrawSprite(SpriteApple, g.apple.Pos)
	}
	switch g.state {
	case StateGameOver:
		dst.DrawText(TextGameOver, GameOverText)
	case StatePlaying:
		dst.DrawText(TextScore, ScoreText+strconv.Itoa(g.score))
	}
}
