package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Terminal layout
const (
	hudHeight = 2 // Title/score line plus separator
	cellWidth = 2 // Terminal columns per grid cell, keeps cells roughly square
)

// glyph is how a sprite looks in the terminal.
type glyph struct {
	runes [cellWidth]rune
	color core.Color
}

var glyphs = map[Sprite]glyph{
	SpriteGrid:  {runes: [cellWidth]rune{'·', ' '}, color: core.ColorGray},
	SpriteHead:  {runes: [cellWidth]rune{'█', '█'}, color: core.ColorBrightGreen},
	SpriteBody:  {runes: [cellWidth]rune{'▓', '▓'}, color: core.ColorGreen},
	SpriteApple: {runes: [cellWidth]rune{'●', ' '}, color: core.ColorBrightRed},
}

// BoardSize returns the terminal size needed to show the whole board.
func BoardSize(grid Grid) (w, h int) {
	return grid.Cols()*cellWidth + 2, grid.Rows() + 2 + hudHeight
}

// screenSurface maps world coordinates onto a character screen. World y grows
// upward, so rows are flipped.
type screenSurface struct {
	dst   *core.Screen
	grid  Grid
	board core.Rect // Border box around the playfield
}

func newScreenSurface(dst *core.Screen, grid Grid) *screenSurface {
	w, h := BoardSize(grid)
	x := core.Max((dst.Width()-w)/2, 0)
	return &screenSurface{
		dst:   dst,
		grid:  grid,
		board: core.NewRect(x, hudHeight, w, h-hudHeight),
	}
}

// cellOrigin returns the screen position of the top-left column of a cell.
func (s *screenSurface) cellOrigin(p Point) (int, int) {
	col := p.X / s.grid.CellSize
	row := s.grid.Rows() - 1 - p.Y/s.grid.CellSize
	return s.board.X + 1 + col*cellWidth, s.board.Y + 1 + row
}

func (s *screenSurface) DrawSprite(sp Sprite, at Point) {
	gl, ok := glyphs[sp]
	if !ok || !s.grid.Contains(at) {
		return
	}
	x, y := s.cellOrigin(at)
	for i, r := range gl.runes {
		s.dst.SetCell(x+i, y, r, gl.color)
	}
}

func (s *screenSurface) DrawText(slot TextSlot, text string) {
	switch slot {
	case TextScore:
		s.dst.DrawTextColor(s.board.X+1, 0, text, core.ColorBrightYellow)
	case TextGameOver:
		mid := s.board.Y + s.board.H/2
		s.dst.DrawTextCentered(mid, " "+text+" ", core.ColorBrightRed)
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := BoardSize(g.settings.Grid)
	if !dst.Bounds().Fits(w, h) {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorBrightRed)
		return
	}

	surface := newScreenSurface(dst, g.settings.Grid)
	dst.DrawTextColor(surface.board.Right()-len(g.Title())-1, 0, g.Title(), core.ColorBrightGreen)
	for x := range dst.Width() {
		dst.SetCell(x, 1, '─', core.ColorGray)
	}
	dst.DrawBox(surface.board, core.ColorWhite)

	g.Draw(surface)
}
