package minesweeper

import (
	"github.com/vovakirdan/sweeper-arcade/internal/config"
	"github.com/vovakirdan/sweeper-arcade/internal/core"
	"github.com/vovakirdan/sweeper-arcade/internal/registry"
)

// Registered game IDs, one per difficulty.
const (
	IDBeginner     = "minesweeper"
	IDIntermediate = "minesweeper_intermediate"
	IDExpert       = "minesweeper_expert"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// GameID returns the registered game ID for a difficulty.
func GameID(d config.Difficulty) string {
	switch d {
	case config.DifficultyIntermediate:
		return IDIntermediate
	case config.DifficultyExpert:
		return IDExpert
	default:
		return IDBeginner
	}
}

// DifficultyOf is the inverse of GameID. Unknown ids map to beginner.
func DifficultyOf(id string) config.Difficulty {
	switch id {
	case IDIntermediate:
		return config.DifficultyIntermediate
	case IDExpert:
		return config.DifficultyExpert
	default:
		return config.DifficultyBeginner
	}
}

func init() {
	for _, d := range config.Difficulties() {
		d := d
		registry.Register(GameID(d), func() registry.Game {
			return New(d)
		})
	}
}

// Game adapts a Board to the arcade platform: cursor, pointer input,
// tick-driven clock, pause, and rendering.
type Game struct {
	difficulty config.Difficulty
	cfg        config.MinesweeperConfig

	board    Board
	cursor   Pos
	exploded Pos // mine that ended the game, valid when lost
	tick     uint64

	// Clock
	tickRate     int
	clockRunning bool
	elapsedTicks uint64

	paused bool

	// Best time for this variant, supplied by the platform
	best    int
	hasBest bool
	newBest bool

	screenW, screenH int
	layout           layout
}

// New creates a Minesweeper game for the given difficulty.
func New(d config.Difficulty) *Game {
	return &Game{difficulty: d}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.difficulty)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.difficulty {
	case config.DifficultyIntermediate:
		return "Minesweeper (Intermediate)"
	case config.DifficultyExpert:
		return "Minesweeper (Expert)"
	default:
		return "Minesweeper"
	}
}

// ScoreOrder ranks finishing times: faster wins rank first.
func (g *Game) ScoreOrder() core.ScoreOrder {
	return core.ScoreLowerIsBetter
}

// Controls returns the key help line shown in the footer.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL move  Space reveal  F flag  P pause  R restart  Q quit"
}

// Reset starts a new board from the runtime seed.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadMinesweeper(configPath)
	if err != nil {
		cfg = config.DefaultMinesweeperConfig()
	}
	g.cfg = cfg

	bc := cfg.Board(g.difficulty)
	if err := g.board.Reset(rt.Seed, bc.Size, bc.Mines); err != nil {
		// Config validation guarantees a playable board; fall back to beginner otherwise.
		//nolint:errcheck // DefaultSize/DefaultMines are always valid
		g.board.Reset(rt.Seed, DefaultSize, DefaultMines)
	}

	g.tick = 0
	g.tickRate = rt.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.elapsedTicks = 0
	g.clockRunning = !cfg.Timer.StartOnFirstReveal
	g.paused = false
	g.newBest = false
	g.exploded = Pos{-1, -1}

	n := g.board.Size()
	g.cursor = Pos{Row: n / 2, Col: n / 2}

	g.Resize(rt.ScreenW, rt.ScreenH)
}

// Resize recomputes the layout for a new terminal size without touching
// the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = computeLayout(g.board.Size(), w, h)
}

// SetBestScore tells the game the stored best time for its variant.
func (g *Game) SetBestScore(score int, ok bool) {
	g.best = score
	g.hasBest = ok
}

// Board exposes the underlying engine, read-only by convention.
func (g *Game) Board() *Board {
	return &g.board
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.layout.tooSmall {
		return core.StepResult{State: g.State()}
	}

	status := g.board.Status()

	if in.Has(core.ActionPause) && !status.Terminal() {
		g.paused = !g.paused
	}
	if g.paused || status.Terminal() {
		// Restart after game over is handled by the platform.
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionFlag) {
		g.flag(g.cursor)
	}
	if in.Has(core.ActionReveal) {
		g.reveal(g.cursor)
	}

	for _, ev := range in.Pointer {
		p, ok := g.layout.cellAt(ev.X, ev.Y)
		if !ok {
			continue
		}
		g.cursor = p
		switch ev.Button {
		case core.PointerPrimary:
			g.reveal(p)
		case core.PointerSecondary:
			g.flag(p)
		}
	}

	if g.clockRunning && !g.board.Status().Terminal() {
		g.elapsedTicks++
	}

	if g.board.Status() == StatusWon {
		g.newBest = !g.hasBest || g.Elapsed() < g.best
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	n := g.board.Size()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, n-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, n-1)
}

// reveal opens p. Positions come from the clamped cursor or the layout
// hit test, so an out-of-range coordinate is a bug.
func (g *Game) reveal(p Pos) {
	n, err := g.board.Reveal(p)
	if err != nil {
		panic(err)
	}
	// A flagged or already open cell is not a reveal
	if n > 0 {
		g.clockRunning = true
	}
	if g.board.Status() == StatusLost {
		g.exploded = p
	}
}

func (g *Game) flag(p Pos) {
	if err := g.board.ToggleFlag(p); err != nil {
		panic(err)
	}
}

// Elapsed returns whole seconds on the clock, capped at timer.max_seconds.
func (g *Game) Elapsed() int {
	secs := int(g.elapsedTicks / uint64(max(g.tickRate, 1)))
	if limit := g.cfg.Timer.MaxSeconds; limit > 0 && secs > limit {
		return limit
	}
	return secs
}

// State returns the current game state. The score is the elapsed time and
// is only recorded for a win.
func (g *Game) State() core.GameState {
	status := g.board.Status()
	return core.GameState{
		Score:      g.Elapsed(),
		GameOver:   status.Terminal(),
		Won:        status == StatusWon,
		Paused:     g.paused || g.layout.tooSmall,
		Recordable: status == StatusWon,
	}
}
