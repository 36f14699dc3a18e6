package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default Space Shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Board: BoardConfig{
			Width:  400,
			Height: 600,
		},
		Ship: ShipConfig{
			Width:        50,
			Height:       80,
			BottomMargin: 20,
			Step:         5,
		},
		Bullet: BulletConfig{
			Width:  5,
			Height: 20,
			Speed:  10,
		},
		Enemy: EnemyConfig{
			InitialSpeed:   5.0,
			SpeedIncrement: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
