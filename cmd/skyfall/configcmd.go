package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config as YAML",
	Long: `Print the built-in game tuning as YAML.

Redirect the output to create a starting point for a custom config:
  skyfall config > my-skyfall.yaml
  skyfall play --config my-skyfall.yaml

Or install it as the user default, picked up automatically:
  mkdir -p ~/.skyfall/configs
  skyfall config > ~/.skyfall/configs/skyfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	fmt.Print(string(config.DefaultYAML()))
}
