package main

import (
	"testing"

	"github.com/vovakirdan/sweeper-arcade/internal/core"
)

func TestResolveGameID(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		difficulty string
		expected   string
		wantErr    bool
	}{
		{"default board", nil, "", "minesweeper", false},
		{"explicit id", []string{"minesweeper_expert"}, "", "minesweeper_expert", false},
		{"id beats preset", []string{"minesweeper"}, "hard", "minesweeper", false},
		{"normal preset", nil, "normal", "minesweeper_intermediate", false},
		{"hard preset", nil, "hard", "minesweeper_expert", false},
		{"unknown id", []string{"tetris"}, "", "", true},
		{"unknown preset", nil, "insane", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagDifficulty = tc.difficulty
			t.Cleanup(func() { flagDifficulty = "" })

			got, err := resolveGameID(tc.args)
			if (err != nil) != tc.wantErr {
				t.Fatalf("resolveGameID(%v) error = %v, wantErr %v", tc.args, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("resolveGameID(%v) = %q, expected %q", tc.args, got, tc.expected)
			}
		})
	}
}

func TestOrderOf(t *testing.T) {
	if orderOf("minesweeper") != core.ScoreLowerIsBetter {
		t.Error("minesweeper should rank by fastest time")
	}
	if orderOf("retired_game") != core.ScoreHigherIsBetter {
		t.Error("unknown games should fall back to higher-is-better")
	}
}
