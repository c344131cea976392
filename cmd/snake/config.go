package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zorro5300/snake-game/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration YAML to stdout.

Use it as a starting point for a custom config:
  snake config > ~/.snake-game/config.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
