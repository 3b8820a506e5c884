package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the built-in Minesweeper configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Beginner:     BoardConfig{Size: 9, Mines: 10},
		Intermediate: BoardConfig{Size: 16, Mines: 40},
		Expert:       BoardConfig{Size: 22, Mines: 99},
		Timer: TimerConfig{
			MaxSeconds:         999,
			StartOnFirstReveal: true,
		},
		HUD: HUDConfig{
			ShowBest: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "minesweeper":
		return defaultMinesweeperYAML
	default:
		return nil
	}
}
