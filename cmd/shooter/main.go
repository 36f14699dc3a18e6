// shooter is a vertical space shooter for the terminal.
//
// Usage:
//
//	shooter                  - Play (same as "shooter play")
//	shooter play             - Play in this terminal
//	shooter serve            - Start SSH server for remote play
//	shooter list             - List the registered games
//	shooter config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--hold <dur>          - How long a key counts as held after an auto-repeat (default: 150ms)
//	--repeat-delay <dur>  - How long a fresh press counts as held (default: 500ms)
//	--config <path>       - Custom game config YAML
//	--log-file <path>     - Write logs to this file
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagHold        time.Duration
	flagRepeatDelay time.Duration
	flagConfig      string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - shoot down the falling enemy before it lands",
	Long: `Space Shooter is a terminal take on the classic vertical shooter.

Slide your ship along the bottom of the board and shoot the enemy ship
before it reaches your base or rams you. Every kill makes the next enemy
fall faster.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  list     - List the registered games
  config   - Print the default configuration

Examples:
  shooter
  shooter play --seed 42
  shooter play --config ./my-shooter.yaml --log-file shooter.log
  shooter serve --ssh :2222`,
	Args: cobra.NoArgs,
	RunE: runPlay,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		shooter.SetConfigPath(flagConfig)
	},
	SilenceUsage: true,
}

func init() {
	defaults := core.DefaultConfig()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", defaults.TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().DurationVar(&flagHold, "hold", defaults.KeyHold, "How long a key counts as held after an auto-repeat")
	rootCmd.PersistentFlags().DurationVar(&flagRepeatDelay, "repeat-delay", defaults.KeyRepeatDelay, "How long a fresh key press counts as held")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime settings shared by play and serve.
func runtimeConfig(width, height int) (core.RuntimeConfig, error) {
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagHold <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--hold must be positive, got %s", flagHold)
	}
	if flagRepeatDelay <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--repeat-delay must be positive, got %s", flagRepeatDelay)
	}
	return core.RuntimeConfig{
		ScreenW:        width,
		ScreenH:        height,
		TickRate:       flagFPS,
		Seed:           flagSeed,
		KeyHold:        flagHold,
		KeyRepeatDelay: flagRepeatDelay,
	}, nil
}
