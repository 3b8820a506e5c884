// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is returned when a loaded config describes an unplayable board.
var ErrInvalidConfiguration = errors.New("config: invalid minesweeper config")

// MinesweeperConfig contains all configuration for Minesweeper.
type MinesweeperConfig struct {
	Beginner     BoardConfig `yaml:"beginner"`
	Intermediate BoardConfig `yaml:"intermediate"`
	Expert       BoardConfig `yaml:"expert"`
	Timer        TimerConfig `yaml:"timer"`
	HUD          HUDConfig   `yaml:"hud"`
}

// BoardConfig defines the square board for one difficulty.
type BoardConfig struct {
	Size  int `yaml:"size"`
	Mines int `yaml:"mines"`
}

// TimerConfig controls the game clock.
type TimerConfig struct {
	MaxSeconds         int  `yaml:"max_seconds"`           // Clock stops counting here
	StartOnFirstReveal bool `yaml:"start_on_first_reveal"` // false starts the clock at reset
}

// HUDConfig toggles optional HUD elements.
type HUDConfig struct {
	ShowBest bool `yaml:"show_best"`
}

// Difficulty names one of the configured boards.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyExpert       Difficulty = "expert"
)

// Difficulties lists every board difficulty in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyExpert}
}

// Board returns the board dimensions for a difficulty.
// Unknown difficulties fall back to beginner.
func (c MinesweeperConfig) Board(d Difficulty) BoardConfig {
	switch d {
	case DifficultyIntermediate:
		return c.Intermediate
	case DifficultyExpert:
		return c.Expert
	default:
		return c.Beginner
	}
}

// Validate checks every board leaves at least one safe cell.
func (c MinesweeperConfig) Validate() error {
	for _, d := range Difficulties() {
		b := c.Board(d)
		if b.Size < 1 {
			return errors.Wrapf(ErrInvalidConfiguration, "%s: size %d must be positive", d, b.Size)
		}
		if b.Mines < 0 || b.Mines >= b.Size*b.Size {
			return errors.Wrapf(ErrInvalidConfiguration, "%s: mines %d must be in [0, %d)", d, b.Mines, b.Size*b.Size)
		}
	}
	if c.Timer.MaxSeconds < 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "timer.max_seconds %d must be positive", c.Timer.MaxSeconds)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level from the CLI.
type DifficultyPreset string

const (
	PresetEasy   DifficultyPreset = "easy"
	PresetNormal DifficultyPreset = "normal"
	PresetHard   DifficultyPreset = "hard"
)

// DifficultyForPreset maps a CLI preset to a board difficulty.
// An empty preset selects beginner.
func DifficultyForPreset(preset DifficultyPreset) (Difficulty, error) {
	switch preset {
	case "", PresetEasy:
		return DifficultyBeginner, nil
	case PresetNormal:
		return DifficultyIntermediate, nil
	case PresetHard:
		return DifficultyExpert, nil
	default:
		return "", errors.Errorf("config: unknown difficulty preset %q (want easy, normal or hard)", preset)
	}
}
