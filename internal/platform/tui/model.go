package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// overlayButton identifies a button on the game-over overlay.
type overlayButton int

const (
	buttonRetry overlayButton = iota
	buttonExit
)

// configReporter is implemented by games that load a config file on Reset.
type configReporter interface {
	ConfigError() error
}

// helpHeight is the number of rows reserved below the playfield for the help bar.
const helpHeight = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	held       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	cursor     overlayButton
	logger     *log.Logger
	now        func() time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and starts a run.
// A nil logger discards all output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	defaults := core.DefaultConfig()
	if cfg.KeyHold <= 0 {
		cfg.KeyHold = defaults.KeyHold
	}
	if cfg.KeyRepeatDelay <= 0 {
		cfg.KeyRepeatDelay = defaults.KeyRepeatDelay
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		held:       NewHeldKeys(cfg.KeyHold, cfg.KeyRepeatDelay),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		now:        time.Now,
	}

	m.resetGame()
	m.logger.Info("run started", "game", game.ID(), "seed", cfg.Seed)
	return m
}

// resetGame resets the game with the current config and reports config fallbacks.
func (m *Model) resetGame() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	if cr, ok := m.game.(configReporter); ok {
		if err := cr.ConfigError(); err != nil {
			m.logger.Warn("using default config", "error", err)
		}
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
// Movement and shooting are held; everything else acts on the press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameState.GameOver {
		return m.handleOverlayKey(action)
	}

	switch action {
	case core.ActionLeft, core.ActionRight, core.ActionShoot:
		m.held.Press(action, m.now())
	}
	return m, nil
}

// handleOverlayKey drives the Retry / Exit buttons.
func (m Model) handleOverlayKey(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionLeft:
		m.cursor = buttonRetry
	case core.ActionRight:
		m.cursor = buttonExit
	case core.ActionRetry:
		m.retry()
	case core.ActionConfirm:
		if m.cursor == buttonExit {
			m.quitting = true
			return m, tea.Quit
		}
		m.retry()
	}
	return m, nil
}

// retry starts a fresh run with a new seed.
func (m *Model) retry() {
	m.config.Seed = m.now().UnixNano()
	m.resetGame()
	m.held.Reset()
	m.inputFrame.Clear()
	m.cursor = buttonRetry
	m.logger.Info("run restarted", "seed", m.config.Seed)
}

// handleResize processes window resize events.
// The board is measured in its own units, so the run continues unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, tickCmd(m.config.TickRate)
	}

	m.inputFrame.Clear()
	m.held.Sample(m.now(), &m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug(ev.Name, ev.Fields...)
	}

	if m.gameState.GameOver {
		m.held.Reset()
		m.cursor = buttonRetry
		m.logger.Info("run ended", "score", m.gameState.Score, "detail", m.gameState.Detail)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text under ~/.shooter/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".shooter", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// draw renders the game and, after a game over, the overlay into the screen buffer.
func (m Model) draw() {
	m.game.Render(m.screen)
	if m.gameState.GameOver {
		drawOverlay(m.screen, m.gameState, m.cursor)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// GameState returns the state observed after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
