// Package config provides YAML-based configuration loading for the shooter.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// ShooterConfig contains all configuration for the Space Shooter game.
// Distances are board units; speeds are board units per tick.
type ShooterConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Ship   ShipConfig   `yaml:"ship"`
	Bullet BulletConfig `yaml:"bullet"`
	Enemy  EnemyConfig  `yaml:"enemy"`
}

// BoardConfig defines the playfield size.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the hitbox shared by the player and the enemy, plus
// player movement.
type ShipConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between player and bottom edge
	Step         float64 `yaml:"step"`          // Horizontal move per tick
}

// BulletConfig defines bullet size and upward speed.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// EnemyConfig defines the descent speed and its per-kill increase.
type EnemyConfig struct {
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
}

// SpawnRange returns the number of distinct integer x positions an enemy can spawn at.
func (c ShooterConfig) SpawnRange() int {
	return int(c.Board.Width-c.Ship.Width) + 1
}

// PlayerSpawn returns the player's starting top-left corner.
func (c ShooterConfig) PlayerSpawn() (x, y float64) {
	x = c.Board.Width/2 - c.Ship.Width/2
	y = c.Board.Height - c.Ship.Height - c.Ship.BottomMargin
	return x, y
}

// MaxBoardSize bounds both board dimensions so spawn columns fit in an int.
const MaxBoardSize = 1 << 20

// fields lists every numeric setting by its YAML path.
func (c ShooterConfig) fields() []struct {
	name string
	v    float64
} {
	return []struct {
		name string
		v    float64
	}{
		{"board.width", c.Board.Width},
		{"board.height", c.Board.Height},
		{"ship.width", c.Ship.Width},
		{"ship.height", c.Ship.Height},
		{"ship.bottom_margin", c.Ship.BottomMargin},
		{"ship.step", c.Ship.Step},
		{"bullet.width", c.Bullet.Width},
		{"bullet.height", c.Bullet.Height},
		{"bullet.speed", c.Bullet.Speed},
		{"enemy.initial_speed", c.Enemy.InitialSpeed},
		{"enemy.speed_increment", c.Enemy.SpeedIncrement},
	}
}

// Validate reports the first setting that would break the game's invariants.
func (c ShooterConfig) Validate() error {
	for _, f := range c.fields() {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalid, f.name, f.v)
		}
	}

	switch {
	case c.Board.Width > MaxBoardSize || c.Board.Height > MaxBoardSize:
		return fmt.Errorf("%w: board size must not exceed %d, got %vx%v", ErrInvalid, MaxBoardSize, c.Board.Width, c.Board.Height)
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("%w: board size must be positive, got %vx%v", ErrInvalid, c.Board.Width, c.Board.Height)
	case c.Ship.Width <= 0 || c.Ship.Height <= 0:
		return fmt.Errorf("%w: ship size must be positive, got %vx%v", ErrInvalid, c.Ship.Width, c.Ship.Height)
	case c.Ship.Width > c.Board.Width:
		return fmt.Errorf("%w: ship width %v exceeds board width %v", ErrInvalid, c.Ship.Width, c.Board.Width)
	case c.Ship.BottomMargin < 0 || c.Ship.Height+c.Ship.BottomMargin > c.Board.Height:
		return fmt.Errorf("%w: player does not fit on the board", ErrInvalid)
	case c.Ship.Step <= 0:
		return fmt.Errorf("%w: ship step must be positive, got %v", ErrInvalid, c.Ship.Step)
	case c.Bullet.Width <= 0 || c.Bullet.Height <= 0:
		return fmt.Errorf("%w: bullet size must be positive, got %vx%v", ErrInvalid, c.Bullet.Width, c.Bullet.Height)
	case c.Bullet.Speed <= 0:
		return fmt.Errorf("%w: bullet speed must be positive, got %v", ErrInvalid, c.Bullet.Speed)
	case c.Enemy.InitialSpeed <= 0:
		return fmt.Errorf("%w: enemy initial speed must be positive, got %v", ErrInvalid, c.Enemy.InitialSpeed)
	case c.Enemy.SpeedIncrement < 0:
		return fmt.Errorf("%w: enemy speed increment must not be negative, got %v", ErrInvalid, c.Enemy.SpeedIncrement)
	}
	return nil
}
