package minesweeper

import "github.com/vovakirdan/tui-sweeper/internal/core"

const (
	cellWidth = 3 // Columns per board cell, e.g. "[F]"
	hudHeight = 3
	minHUDW   = 44
)

// layout places the board on screen.
type layout struct {
	board core.Rect // Including border
	rows  int
	cols  int
}

// computeLayout centers the board below the HUD and checks the screen fits.
func (g *Game) computeLayout() {
	rows, cols := g.session.Rows(), g.session.Cols()
	boardW := cols*cellWidth + 2
	boardH := rows + 2

	g.layout = layout{
		board: core.NewRect((g.runtime.ScreenW-boardW)/2, hudHeight+1, boardW, boardH),
		rows:  rows,
		cols:  cols,
	}

	minW := core.Max(boardW, minHUDW)
	minH := hudHeight + 1 + boardH + 2 // Board plus controls line
	g.tooSmall = g.runtime.ScreenW < minW || g.runtime.ScreenH < minH
}

// cellOrigin returns the screen position of the left edge of a cell.
func (l layout) cellOrigin(row, col int) (int, int) {
	return l.board.X + 1 + col*cellWidth, l.board.Y + 1 + row
}

// cellAt maps a screen position to a 0-based board cell.
func (l layout) cellAt(x, y int) (row, col int, ok bool) {
	inner := core.NewRect(l.board.X+1, l.board.Y+1, l.cols*cellWidth, l.rows)
	if !inner.Contains(x, y) {
		return 0, 0, false
	}
	return y - inner.Y, (x - inner.X) / cellWidth, true
}
