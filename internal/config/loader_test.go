package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minesweeper.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseMinesweeper(GetDefaultYAML("minesweeper"))
	if err != nil {
		t.Fatalf("embedded default YAML is invalid: %v", err)
	}
	if cfg != DefaultMinesweeperConfig() {
		t.Errorf("embedded YAML %+v differs from DefaultMinesweeperConfig() %+v", cfg, DefaultMinesweeperConfig())
	}
}

func TestLoadCustomPathOverridesOnlyNamedKeys(t *testing.T) {
	path := writeConfig(t, "expert:\n  size: 30\n  mines: 150\ntimer:\n  start_on_first_reveal: false\n")

	cfg, err := LoadMinesweeper(path)
	if err != nil {
		t.Fatalf("LoadMinesweeper() failed: %v", err)
	}

	if got := cfg.Board(DifficultyExpert); got.Size != 30 || got.Mines != 150 {
		t.Errorf("expert = %+v, expected 30/150", got)
	}
	if got := cfg.Board(DifficultyBeginner); got.Size != 9 || got.Mines != 10 {
		t.Errorf("beginner should keep defaults, got %+v", got)
	}
	if cfg.Timer.StartOnFirstReveal {
		t.Error("start_on_first_reveal should be overridden to false")
	}
	if cfg.Timer.MaxSeconds != 999 {
		t.Errorf("max_seconds should keep default 999, got %d", cfg.Timer.MaxSeconds)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"malformed yaml", "beginner: [size", false},
		{"too many mines", "beginner:\n  size: 3\n  mines: 9\n", true},
		{"zero size", "intermediate:\n  size: 0\n  mines: 0\n", true},
		{"zero timer", "timer:\n  max_seconds: 0\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadMinesweeper(writeConfig(t, tc.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.invalid && !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := LoadMinesweeper(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestDifficultyForPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected Difficulty
		wantErr  bool
	}{
		{"", DifficultyBeginner, false},
		{PresetEasy, DifficultyBeginner, false},
		{PresetNormal, DifficultyIntermediate, false},
		{PresetHard, DifficultyExpert, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := DifficultyForPreset(tc.preset)
		if (err != nil) != tc.wantErr {
			t.Errorf("DifficultyForPreset(%q) error = %v, wantErr %v", tc.preset, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("DifficultyForPreset(%q) = %q, expected %q", tc.preset, got, tc.expected)
		}
	}
}

func TestBoardUnknownDifficultyFallsBack(t *testing.T) {
	cfg := DefaultMinesweeperConfig()
	if cfg.Board("nightmare") != cfg.Beginner {
		t.Error("unknown difficulty should fall back to beginner")
	}
}
