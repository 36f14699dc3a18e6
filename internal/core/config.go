package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW        int           // Screen width in characters
	ScreenH        int           // Screen height in characters
	TickRate       int           // Simulation ticks per second (default 60)
	Seed           int64         // RNG seed for deterministic gameplay
	KeyHold        time.Duration // How long a key counts as held after an auto-repeat
	KeyRepeatDelay time.Duration // How long a fresh press counts as held, covering the delay before auto-repeat starts
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		TickRate:       60,
		Seed:           0, // 0 means use current time in platform layer
		KeyHold:        150 * time.Millisecond,
		KeyRepeatDelay: 500 * time.Millisecond,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Detail   string // Why the game ended, shown on the game-over overlay
}

// Event is a notable thing that happened during a tick, for debug logging.
type Event struct {
	Name   string
	Fields []any // Alternating key/value pairs
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
