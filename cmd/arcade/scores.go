package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sweeper-arcade/internal/core"
	"github.com/vovakirdan/sweeper-arcade/internal/platform/tui"
	"github.com/vovakirdan/sweeper-arcade/internal/registry"
	"github.com/vovakirdan/sweeper-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best times",
	Long: `Display the best times for the specified board. Without a game id,
prints a summary of every board that has recorded results.

Examples:
  arcade scores
  arcade scores minesweeper
  arcade scores minesweeper_expert --limit 25
  arcade scores minesweeper --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results for the game")
}

// orderOf ranks unknown game ids as points, the storage default.
func orderOf(gameID string) core.ScoreOrder {
	if info, ok := registry.Info(gameID); ok {
		return info.Order
	}
	return core.ScoreHigherIsBetter
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a game id")
			os.Exit(1)
		}
		printSummary(store)
		return
	}

	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available boards.")
		os.Exit(1)
	}

	if flagScoresClear {
		n, clearErr := store.ClearScores(gameID)
		if clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Printf("Removed %d results for %s\n", n, info.Title)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit, info.Order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Times - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first best time!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "Rank", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "----", "----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-16s  %s\n", i+1, tui.FormatScore(info.Order, entry.Score), player, dateStr)
	}

	if stats, statsErr := store.GetGameStats(gameID, info.Order); statsErr == nil {
		fmt.Println()
		fmt.Printf("Best: %s  Games: %d  Average: %.1f\n",
			tui.FormatScore(info.Order, stats.BestScore), stats.GamesCount, stats.AvgScore)
	}
}

// printSummary lists per-game stats for every game with results.
func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats(orderOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No results recorded yet.")
		return
	}

	fmt.Printf("  %-26s  %-8s  %-6s  %s\n", "Game", "Best", "Games", "Last played")
	fmt.Printf("  %-26s  %-8s  %-6s  %s\n", "----", "----", "-----", "-----------")

	// Registry order first, then ids the registry no longer knows
	seen := make(map[string]bool)
	for _, g := range registry.List() {
		if stats, ok := all[g.ID]; ok {
			printStatsRow(stats, g.Order)
			seen[g.ID] = true
		}
	}
	for id, stats := range all {
		if !seen[id] {
			printStatsRow(stats, orderOf(id))
		}
	}
}

func printStatsRow(stats *storage.GameStats, order core.ScoreOrder) {
	fmt.Printf("  %-26s  %-8s  %-6d  %s\n",
		stats.GameID,
		tui.FormatScore(order, stats.BestScore),
		stats.GamesCount,
		stats.LastPlayed.Format("2006-01-02 15:04"),
	)
}
