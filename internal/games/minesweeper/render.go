package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/sweeper-arcade/internal/core"
)

const (
	hudHeight    = 3 // title, stats, blank
	footerHeight = 3 // blank, status, controls
)

// layout places the board on screen. Cells are cellW characters wide and
// one row tall, inside a one-character border.
type layout struct {
	cellW    int
	frame    core.Rect // board including border
	grid     core.Rect // cell area only
	tooSmall bool
}

// computeLayout centers an n-by-n board, narrowing cells to two columns
// when the three-column layout does not fit.
func computeLayout(n, screenW, screenH int) layout {
	l := layout{cellW: 3}
	if n*l.cellW+2 > screenW {
		l.cellW = 2
	}

	w := n*l.cellW + 2
	h := n + 2
	l.tooSmall = w > screenW || h+hudHeight+footerHeight > screenH

	x := max((screenW-w)/2, 0)
	l.frame = core.NewRect(x, hudHeight, w, h)
	l.grid = core.NewRect(x+1, hudHeight+1, n*l.cellW, n)
	return l
}

// cellAt maps a screen position to the cell under it.
func (l layout) cellAt(x, y int) (Pos, bool) {
	if l.tooSmall || !l.grid.Contains(x, y) {
		return Pos{}, false
	}
	return Pos{Row: y - l.grid.Y, Col: (x - l.grid.X) / l.cellW}, true
}

// origin returns the top-left screen position of a cell.
func (l layout) origin(p Pos) (int, int) {
	return l.grid.X + p.Col*l.cellW, l.grid.Y + p.Row
}

var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorNavy,
	core.ColorDarkRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBoxColor(g.layout.frame, core.ColorGray)

	if g.paused {
		g.renderPaused(dst)
	} else {
		g.renderCells(dst)
	}

	g.renderFooter(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	n := g.board.Size()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", n*2+2, n+2+hudHeight+footerHeight))
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title())

	frame := g.layout.frame
	mines := fmt.Sprintf("Mines: %d", g.board.MinesRemaining())
	dst.DrawTextColor(frame.X, 1, mines, core.ColorBrightRed)

	clock := fmt.Sprintf("Time: %03d", g.Elapsed())
	if g.cfg.HUD.ShowBest {
		clock += "  Best: " + g.bestLabel()
	}
	x := max(frame.Right()-len(clock), frame.X+len(mines)+1)
	dst.DrawText(x, 1, clock)
}

func (g *Game) bestLabel() string {
	if !g.hasBest {
		return "N/A"
	}
	return fmt.Sprintf("%ds", g.best)
}

func (g *Game) renderCells(dst *core.Screen) {
	n := g.board.Size()
	lost := g.board.Status() == StatusLost

	for r, nr := 0, n; r < nr; r++ {
		for c, nc := 0, n; c < nc; c++ {
			p := Pos{r, c}
			cell := g.board.cells[g.board.index(p)]
			ch, color := glyph(cell, lost)
			if lost && p == g.exploded {
				color = core.ColorRed
			}

			x, y := g.layout.origin(p)
			dst.SetColor(x+1, y, ch, color)
		}
	}

	if !g.board.Status().Terminal() {
		g.renderCursor(dst)
	}
}

// glyph picks the rune and color for one cell. After a loss, flags on
// safe cells are marked as mistakes.
func glyph(c Cell, lost bool) (rune, core.Color) {
	switch {
	case c.Revealed && c.Mine:
		return '*', core.ColorBrightRed
	case c.Revealed && c.Adjacent == 0:
		return ' ', core.ColorDefault
	case c.Revealed:
		return rune('0' + c.Adjacent), numberColors[c.Adjacent]
	case c.Flagged && lost && !c.Mine:
		return 'X', core.ColorOrange
	case c.Flagged:
		return 'F', core.ColorRed
	default:
		return '■', core.ColorGray
	}
}

func (g *Game) renderCursor(dst *core.Screen) {
	x, y := g.layout.origin(g.cursor)
	if g.layout.cellW == 3 {
		dst.SetColor(x, y, '[', core.ColorYellow)
		dst.SetColor(x+2, y, ']', core.ColorYellow)
		return
	}
	dst.SetColor(x, y, '>', core.ColorYellow)
}

func (g *Game) renderPaused(dst *core.Screen) {
	grid := g.layout.grid
	dst.DrawRect(grid, ' ')
	_, cy := grid.Center()
	dst.DrawTextCentered(cy, "PAUSED")
	dst.DrawTextCentered(cy+1, "Press P to resume")
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := g.layout.frame.Bottom() + 1

	switch g.board.Status() {
	case StatusWon:
		msg := fmt.Sprintf("YOU WIN! Time: %ds", g.Elapsed())
		if g.newBest {
			msg += "  New best!"
		}
		dst.DrawTextColor(centerX(g.screenW, msg), y, msg, core.ColorBrightGreen)
		dst.DrawTextCentered(y+1, "Press R to restart, B for menu")
	case StatusLost:
		msg := "BOOM! Game over"
		dst.DrawTextColor(centerX(g.screenW, msg), y, msg, core.ColorBrightRed)
		dst.DrawTextCentered(y+1, "Press R to restart, B for menu")
	default:
		dst.DrawTextColor(centerX(g.screenW, g.Controls()), y+1, g.Controls(), core.ColorGray)
	}
}

func centerX(width int, s string) int {
	return max((width-len([]rune(s)))/2, 0)
}
