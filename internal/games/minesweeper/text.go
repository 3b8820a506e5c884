package minesweeper

import "strings"

// Text glyphs used by Rows.
const (
	GlyphHidden = '#'
	GlyphFlag   = 'F'
	GlyphMine   = '*'
	GlyphEmpty  = '.'
)

// Rows renders the board as one string per row.
//
// With solution false the rows show what a player sees: hidden cells as
// '#', flags as 'F', revealed cells as '.', '1'-'8' or '*'. With solution
// true every cell is shown as if revealed.
func (b *Board) Rows(solution bool) []string {
	rows := make([]string, b.size)
	var sb strings.Builder
	for r, nr := 0, b.size; r < nr; r++ {
		sb.Reset()
		for c, nc := 0, b.size; c < nc; c++ {
			sb.WriteRune(textGlyph(b.cells[b.index(Pos{r, c})], solution))
		}
		rows[r] = sb.String()
	}
	return rows
}

func textGlyph(c Cell, solution bool) rune {
	if !solution && !c.Revealed {
		if c.Flagged {
			return GlyphFlag
		}
		return GlyphHidden
	}
	switch {
	case c.Mine:
		return GlyphMine
	case c.Adjacent == 0:
		return GlyphEmpty
	default:
		return rune('0' + c.Adjacent)
	}
}
