// arcade is a terminal Minesweeper arcade with a local menu and an SSH server.
//
// Usage:
//
//	arcade list              - List available boards
//	arcade play [game]       - Play a board
//	arcade menu              - Start menu to pick boards interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show best times
//	arcade board [game]      - Print a seeded board layout
//	arcade config            - Print the effective minesweeper config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: ~/.arcade/sweeper.db)
//	--config <path>     - Custom minesweeper config YAML
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Registers the minesweeper boards
	"github.com/vovakirdan/sweeper-arcade/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Sweeper Arcade - Minesweeper in your terminal",
	Long: `Sweeper Arcade is a terminal Minesweeper with beginner, intermediate
and expert boards, a best-times scoreboard and an SSH server.

Available commands:
  list     - Show all available boards
  play     - Play a board directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  scores   - View best times
  board    - Print a seeded board layout
  config   - Print the effective minesweeper config

Examples:
  arcade list
  arcade play --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores minesweeper_expert`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		minesweeper.SetConfigPath(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/sweeper.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom minesweeper config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Interactive commands own the
// terminal, so they log to ~/.arcade/arcade.log instead of stderr.
// The returned closer releases the log file.
func newLogger(interactive bool) (*log.Logger, io.Closer) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
		level = log.InfoLevel
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if interactive {
		out = io.Discard
		if f, fileErr := openLogFile(); fileErr == nil {
			out, closer = f, f
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, closer
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// currentUser names the local player for score records.
func currentUser() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
