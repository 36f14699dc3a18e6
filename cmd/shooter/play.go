package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Space/Up/K   - Shoot
  R            - Retry (after game over)
  Enter        - Press the selected button
  Ctrl+S       - Save a text screenshot to ~/.shooter/screenshots
  Q/Ctrl+C     - Quit

Terminals only report key presses, so a fresh press counts as held for
--repeat-delay while the keyboard starts auto-repeating. Each repeat
then keeps the key held for --hold.

Examples:
  shooter play
  shooter play --seed 42 --fps 30
  shooter play --hold 200ms --repeat-delay 700ms
  shooter play --config ./my-shooter.yaml --log-file shooter.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	stderr := log.NewWithOptions(os.Stderr, log.Options{Prefix: "shooter"})

	// Surface config problems before the alt screen hides stderr
	if _, err := config.LoadShooter(flagConfig); err != nil {
		stderr.Warn("falling back to default config", "error", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg, err := runtimeConfig(width, height)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(shooter.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogFile returns a debug logger writing to path.
// An empty path yields a nil logger, which the game model treats as discard.
func openLogFile(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "shooter",
	})
	return logger, func() { _ = f.Close() }, nil
}
