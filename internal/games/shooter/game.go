// Package shooter implements a vertical space shooter.
// The player slides along the bottom of the board and shoots a single enemy
// ship that falls faster after every kill.
package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// GameID is the registry identifier of the shooter.
const GameID = "shooter"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts State to the registry.Game interface.
type Game struct {
	state  *State
	last   StepEvents
	cfgErr error
}

// New creates a new Space Shooter game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Shooter"
}

// Reset loads the configuration and starts a fresh run seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadShooter(configPath)
	g.cfgErr = err
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}

	g.state = NewState(cfg, NewSpawner(runtime.Seed))
	g.last = StepEvents{}
}

// ConfigError returns the error from the last config load, if any.
// The game falls back to defaults when it is non-nil.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	ev := g.state.Advance(Input{
		MoveLeft:  in.Has(core.ActionLeft),
		MoveRight: in.Has(core.ActionRight),
		Shoot:     in.Has(core.ActionShoot),
	})
	g.last = ev

	return core.StepResult{
		State:  g.State(),
		Events: g.events(ev),
	}
}

// events converts step events into loggable records.
func (g *Game) events(ev StepEvents) []core.Event {
	var out []core.Event
	if ev.Hit {
		out = append(out, core.Event{
			Name:   "enemy destroyed",
			Fields: []any{"score", g.state.Score(), "speed", g.state.EnemySpeed(), "tick", g.state.Tick()},
		})
	}
	if ev.GameOver {
		snap := g.state.Snapshot()
		out = append(out, core.Event{
			Name:   "game over",
			Fields: []any{"reason", ev.Reason.String(), "score", g.state.Score(), "tick", g.state.Tick(), "hash", snap.Hash()},
		})
	}
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.GameOver(),
	}
	switch g.state.Reason() {
	case ReasonEnemyLanded:
		st.Detail = "The enemy slipped past you"
	case ReasonCollision:
		st.Detail = "Your ship was rammed"
	}
	return st
}

// LastEvents returns what happened during the most recent Step.
func (g *Game) LastEvents() StepEvents {
	return g.last
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
