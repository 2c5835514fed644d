package minesweeper

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

// Glyphs for board cells.
const (
	glyphHidden   = '·'
	glyphRevealed = '░'
	glyphFlag     = 'F'
	glyphBomb     = '*'
	glyphHeart    = '♥'
	glyphLostLife = '♡'
	glyphSparkle  = '✦'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderSparkle(dst)

	footerY := g.layout.board.Bottom() + 1
	dst.DrawTextColored((g.runtime.ScreenW-len([]rune(g.Controls())))/2, footerY, g.Controls(), core.ColorGray)

	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.runtime.ScreenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws score, lives, bombs and targets above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	cfg := g.session.Config()
	left := (g.runtime.ScreenW - minHUDW) / 2
	right := left + minHUDW

	title := fmt.Sprintf("MINESWEEPER  %s", strings.ToUpper(string(g.difficulty)))
	dst.DrawTextColored((g.runtime.ScreenW-len(title))/2, 0, title, core.ColorWhite)

	dst.DrawText(left, 1, fmt.Sprintf("Score %05d", g.session.Score()))
	lives := hearts(g.session.LivesRemaining(), cfg.Lives)
	dst.DrawTextColored(right-len([]rune(lives)), 1, lives, core.ColorRed)

	dst.DrawText(left, 2, fmt.Sprintf("Bombs %d  Win at %d", cfg.TotalBombs, cfg.MaxScore))
	best := fmt.Sprintf("Best %05d", g.highScore)
	dst.DrawTextColored(right-len(best), 2, best, core.ColorYellow)
}

// hearts renders remaining lives as filled hearts and lost ones as outlines.
func hearts(remaining, total int) string {
	if remaining < 0 {
		remaining = 0
	}
	return strings.Repeat(string(glyphHeart), remaining) +
		strings.Repeat(string(glyphLostLife), core.Max(total-remaining, 0))
}

// renderBoard draws the grid, the cursor and, after a loss, every bomb.
func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(g.layout.board)

	showBombs := g.session.Result() == sweeper.ResultLost
	g.session.Each(func(c sweeper.Cell) {
		row, col := g.session.Position(c.Index)
		x, y := g.layout.cellOrigin(row, col)

		glyph, color := glyphHidden, core.ColorHidden
		switch {
		case g.fx.flashing(c.Index):
			glyph, color = glyphBomb, core.ColorBomb
		case showBombs && g.session.IsBomb(c.Index):
			glyph, color = glyphBomb, core.ColorBomb
		case c.Flagged:
			glyph, color = glyphFlag, core.ColorFlag
		case c.Revealed:
			glyph, color = glyphRevealed, core.ColorRevealed
			dst.SetColored(x, y, glyph, color)
			dst.SetColored(x+2, y, glyph, color)
		}
		dst.SetColored(x+1, y, glyph, color)

		if row == g.cursorRow && col == g.cursorCol && !g.session.IsOver() {
			dst.SetColored(x, y, '[', core.ColorCursor)
			dst.SetColored(x+2, y, ']', core.ColorCursor)
		}
	})
}

// renderSparkle scatters stars around the board while the win animation runs.
func (g *Game) renderSparkle(dst *core.Screen) {
	if !g.fx.sparkling() {
		return
	}
	b := g.layout.board
	phase := int(g.tick / 4)
	for x := b.X - 1; x <= b.Right(); x++ {
		if (x+phase)%3 == 0 {
			dst.SetColored(x, b.Y-1, glyphSparkle, core.ColorBrightYellow)
			dst.SetColored(x, b.Bottom(), glyphSparkle, core.ColorBrightGreen)
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	centerX, centerY := g.layout.board.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, core.ColorWhite, "PAUSED", "Press P to resume")
		return
	}

	switch g.session.Result() {
	case sweeper.ResultWon:
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightGreen,
			"YOU WON!", fmt.Sprintf("Score: %d", g.session.Score()), "Press R to restart")
	case sweeper.ResultLost:
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightRed,
			"GAME OVER", fmt.Sprintf("Score: %d", g.session.Score()), "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		if i == 0 {
			dst.DrawTextColored(x, box.Y+1+i, line, color)
		} else {
			dst.DrawText(x, box.Y+1+i, line)
		}
	}
}
