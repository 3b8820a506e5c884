package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/sweeper-arcade/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the minesweeper configuration",
	Long: `Print the configuration boards are built from, after applying the
search order: --config, ~/.arcade/configs/minesweeper.yaml,
./configs/minesweeper.yaml, then the built-in defaults.

Examples:
  arcade config
  arcade config --default > ~/.arcade/configs/minesweeper.yaml
  arcade config --config ./my-minesweeper.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.GetDefaultYAML("minesweeper"))
		return
	}

	cfg, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
