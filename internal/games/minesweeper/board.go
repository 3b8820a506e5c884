package minesweeper

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Default board dimensions for the classic beginner layout.
const (
	DefaultSize  = 9
	DefaultMines = 10
)

var (
	// ErrInvalidCoordinate is returned for rows or columns outside the board.
	ErrInvalidCoordinate = errors.New("minesweeper: invalid coordinate")

	// ErrInvalidConfiguration is returned by Reset for a non-positive size or
	// a mine count that does not leave at least one safe cell.
	ErrInvalidConfiguration = errors.New("minesweeper: invalid configuration")
)

// Status is the outcome of a board.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Pos is a board coordinate. Row 0 is the top row.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell is one grid position.
type Cell struct {
	Mine     bool
	Adjacent int // mines in the Moore neighborhood; undefined for mines
	Revealed bool
	Flagged  bool
}

// Board is a square minesweeper grid.
//
// A Board is not safe for concurrent use; one driver issues commands.
type Board struct {
	size  int
	mines int
	cells []Cell

	revealedSafe int
	mineHit      bool
	flags        int

	stack []Pos // flood fill worklist, reused between reveals
}

// NewBoard creates a board of the given size with mines placed from seed.
func NewBoard(seed int64, size, mines int) (*Board, error) {
	b := &Board{}
	if err := b.Reset(seed, size, mines); err != nil {
		return nil, err
	}
	return b, nil
}

// NewBoardWithMines creates a board with mines at exactly the given positions.
func NewBoardWithMines(size int, mines []Pos) (*Board, error) {
	if err := validate(size, len(mines)); err != nil {
		return nil, err
	}

	b := &Board{}
	b.clear(size, len(mines))
	for _, p := range mines {
		if !b.inBounds(p) {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "mine at %v outside %dx%d board", p, size, size)
		}
		c := &b.cells[b.index(p)]
		if c.Mine {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "duplicate mine at %v", p)
		}
		c.Mine = true
	}
	b.computeAdjacency()
	return b, nil
}

func validate(size, mines int) error {
	if size < 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "size %d must be positive", size)
	}
	if mines < 0 || mines >= size*size {
		return errors.Wrapf(ErrInvalidConfiguration, "mine count %d must be in [0, %d)", mines, size*size)
	}
	return nil
}

// Reset starts a fresh game: all cells cleared, mines placed uniformly at
// random by rejection sampling, adjacency computed.
func (b *Board) Reset(seed int64, size, mines int) error {
	if err := validate(size, mines); err != nil {
		return err
	}

	b.clear(size, mines)

	rng := rand.New(rand.NewSource(seed))
	total := size * size
	for placed := 0; placed < mines; {
		i := rng.Intn(total)
		if b.cells[i].Mine {
			continue
		}
		b.cells[i].Mine = true
		placed++
	}

	b.computeAdjacency()
	return nil
}

func (b *Board) clear(size, mines int) {
	total := size * size
	if cap(b.cells) >= total {
		b.cells = b.cells[:total]
		clear(b.cells)
	} else {
		b.cells = make([]Cell, total)
	}
	b.size = size
	b.mines = mines
	b.revealedSafe = 0
	b.mineHit = false
	b.flags = 0
	b.stack = b.stack[:0]
}

func (b *Board) computeAdjacency() {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			p := Pos{r, c}
			cell := &b.cells[b.index(p)]
			if cell.Mine {
				continue
			}
			count := 0
			b.eachNeighbor(p, func(n Pos) {
				if b.cells[b.index(n)].Mine {
					count++
				}
			})
			cell.Adjacent = count
		}
	}
}

// Reveal opens the cell at p and returns how many cells became revealed.
//
// Revealing a flagged or already revealed cell, or any cell once the game is
// over, does nothing. Opening a mine loses the game and exposes every mine.
// Opening a cell with no adjacent mines cascades to its neighbors.
func (b *Board) Reveal(p Pos) (int, error) {
	if !b.inBounds(p) {
		return 0, errors.Wrapf(ErrInvalidCoordinate, "reveal %v on %dx%d board", p, b.size, b.size)
	}
	if b.Status().Terminal() {
		return 0, nil
	}

	cell := &b.cells[b.index(p)]
	if cell.Revealed || cell.Flagged {
		return 0, nil
	}

	if cell.Mine {
		b.mineHit = true
		return b.revealAllMines(), nil
	}

	return b.flood(p), nil
}

// flood reveals start and, while it keeps finding zero cells, their
// neighborhoods. The Revealed flag doubles as the visited set.
func (b *Board) flood(start Pos) int {
	opened := 0
	b.stack = append(b.stack[:0], start)
	b.cells[b.index(start)].Revealed = true
	opened++

	for len(b.stack) > 0 {
		p := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]

		if b.cells[b.index(p)].Adjacent != 0 {
			continue
		}
		b.eachNeighbor(p, func(n Pos) {
			nc := &b.cells[b.index(n)]
			if nc.Revealed || nc.Flagged || nc.Mine {
				return
			}
			nc.Revealed = true
			opened++
			b.stack = append(b.stack, n)
		})
	}

	b.revealedSafe += opened
	return opened
}

func (b *Board) revealAllMines() int {
	opened := 0
	for i := range b.cells {
		if b.cells[i].Mine && !b.cells[i].Revealed {
			b.cells[i].Revealed = true
			opened++
		}
	}
	return opened
}

// ToggleFlag flips the flag on an unrevealed cell while the game is running.
func (b *Board) ToggleFlag(p Pos) error {
	if !b.inBounds(p) {
		return errors.Wrapf(ErrInvalidCoordinate, "flag %v on %dx%d board", p, b.size, b.size)
	}
	if b.Status().Terminal() {
		return nil
	}

	cell := &b.cells[b.index(p)]
	if cell.Revealed {
		return nil
	}

	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		b.flags++
	} else {
		b.flags--
	}
	return nil
}

// Status reports the game outcome from the maintained reveal counters.
// The counters always agree with the cells: the game is lost once any mine
// is revealed and won once every safe cell is revealed.
func (b *Board) Status() Status {
	switch {
	case b.mineHit:
		return StatusLost
	case b.size > 0 && b.revealedSafe == len(b.cells)-b.mines:
		return StatusWon
	default:
		return StatusInProgress
	}
}

// Cell returns a copy of the cell at p.
func (b *Board) Cell(p Pos) (Cell, error) {
	if !b.inBounds(p) {
		return Cell{}, errors.Wrapf(ErrInvalidCoordinate, "cell %v on %dx%d board", p, b.size, b.size)
	}
	return b.cells[b.index(p)], nil
}

// Size returns the side length of the board.
func (b *Board) Size() int { return b.size }

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int { return b.mines }

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int { return b.flags }

// MinesRemaining is the mine count minus placed flags. It goes negative when
// the player over-flags.
func (b *Board) MinesRemaining() int { return b.mines - b.flags }

// RevealedCount returns the number of revealed cells, mines included.
func (b *Board) RevealedCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Revealed {
			n++
		}
	}
	return n
}

// Mines returns the mine positions in row-major order.
func (b *Board) Mines() []Pos {
	out := make([]Pos, 0, b.mines)
	for i, c := range b.cells {
		if c.Mine {
			out = append(out, b.pos(i))
		}
	}
	return out
}

func (b *Board) inBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

func (b *Board) index(p Pos) int {
	return p.Row*b.size + p.Col
}

func (b *Board) pos(i int) Pos {
	return Pos{Row: i / b.size, Col: i % b.size}
}

func (b *Board) eachNeighbor(p Pos, fn func(Pos)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Pos{p.Row + dr, p.Col + dc}
			if b.inBounds(n) {
				fn(n)
			}
		}
	}
}
