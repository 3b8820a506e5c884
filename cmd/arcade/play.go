package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sweeper-arcade/internal/config"
	"github.com/vovakirdan/sweeper-arcade/internal/core"
	"github.com/vovakirdan/sweeper-arcade/internal/games/minesweeper"
	"github.com/vovakirdan/sweeper-arcade/internal/platform/tui"
	"github.com/vovakirdan/sweeper-arcade/internal/registry"
	"github.com/vovakirdan/sweeper-arcade/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a board",
	Long: `Start playing the specified board. Without a game id the board is
picked by --difficulty (beginner by default).

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Space/Enter       - Reveal cell
  F                 - Toggle flag
  Mouse             - Left click reveals, right click flags
  P                 - Pause
  R                 - Restart (after game over)
  Esc/B             - Leave (when paused or after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 9x9 board, 10 mines
  normal - 16x16 board, 40 mines
  hard   - 22x22 board, 99 mines

Examples:
  arcade play
  arcade play minesweeper_expert
  arcade play --difficulty normal
  arcade play --seed 42 --config ./my-minesweeper.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// resolveGameID picks the game from an explicit id or the difficulty preset.
func resolveGameID(args []string) (string, error) {
	if len(args) > 0 {
		if !registry.Exists(args[0]) {
			return "", fmt.Errorf("unknown game %q", args[0])
		}
		return args[0], nil
	}

	d, err := config.DifficultyForPreset(config.DifficultyPreset(flagDifficulty))
	if err != nil {
		return "", err
	}
	return minesweeper.GameID(d), nil
}

// terminalConfig builds the runtime config from the global flags and the
// current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID, err := resolveGameID(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available boards.")
		os.Exit(1)
	}

	// A broken custom config is reported before the terminal is taken over
	if _, err := config.LoadMinesweeper(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser := newLogger(true)
	defer logCloser.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	player := tui.Player{Name: currentUser()}
	logger.Info("starting game", "game", gameID, "seed", flagSeed)

	runErr := tui.Run(game, store, terminalConfig(), player, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
