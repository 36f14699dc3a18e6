package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in shooter.yaml.

Save it to ~/.shooter/configs/shooter.yaml or ./configs/shooter.yaml and
edit it to change the board, ship, bullet or enemy settings, or pass it
explicitly with --config.

Example:
  shooter config > ~/.shooter/configs/shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
