package minesweeper

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64        `json:"tick"`
	ID        string        `json:"id"`
	Size      int           `json:"size"`
	Mines     int           `json:"mines"`
	Flags     int           `json:"flags"`
	Revealed  int           `json:"revealed"`
	Cursor    Pos           `json:"cursor"`
	Elapsed   int           `json:"elapsed"`
	State     GameStateType `json:"state"`
	Rows      []string      `json:"rows"`       // player view, see Board.Rows
	MineField []string      `json:"mine_field"` // solution view
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.layout.tooSmall:
		state = StatePausedSmall
	case g.board.Status() == StatusWon:
		state = StateWon
	case g.board.Status() == StatusLost:
		state = StateLost
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		ID:        g.ID(),
		Size:      g.board.Size(),
		Mines:     g.board.MineCount(),
		Flags:     g.board.FlagCount(),
		Revealed:  g.board.RevealedCount(),
		Cursor:    g.cursor,
		Elapsed:   g.Elapsed(),
		State:     state,
		Rows:      g.board.Rows(false),
		MineField: g.board.Rows(true),
	}
}
