package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadMinesweeper loads Minesweeper configuration.
// Search order: customPath -> ~/.arcade/configs/minesweeper.yaml -> ./configs/minesweeper.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	// Try custom path first; errors here are the caller's to see
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MinesweeperConfig{}, errors.Wrapf(err, "config: read %s", customPath)
		}
		cfg, err := parseMinesweeper(data)
		if err != nil {
			return MinesweeperConfig{}, errors.WithMessagef(err, "config: %s", customPath)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("minesweeper.yaml"),
		filepath.Join("configs", "minesweeper.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseMinesweeper(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseMinesweeper(defaultMinesweeperYAML)
	if err != nil {
		return DefaultMinesweeperConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// parseMinesweeper decodes YAML on top of the defaults and validates the result.
func parseMinesweeper(data []byte) (MinesweeperConfig, error) {
	cfg := DefaultMinesweeperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MinesweeperConfig{}, errors.Wrap(err, "parse yaml")
	}
	if err := cfg.Validate(); err != nil {
		return MinesweeperConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
