package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ScoreOrder tells the score store and scoreboard how to rank a game's results.
type ScoreOrder int

const (
	// ScoreHigherIsBetter ranks larger scores first (points).
	ScoreHigherIsBetter ScoreOrder = iota
	// ScoreLowerIsBetter ranks smaller scores first (elapsed seconds).
	ScoreLowerIsBetter
)

// Better reports whether score a beats score b under this order.
func (o ScoreOrder) Better(a, b int) bool {
	if o == ScoreLowerIsBetter {
		return a < b
	}
	return a > b
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (points or elapsed seconds, see ScoreOrder)
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended in a win
	Paused   bool // Whether the game is paused

	// Recordable is set when the final Score should be submitted to the
	// score store. Only meaningful once GameOver is true.
	Recordable bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
