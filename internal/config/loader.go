package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads Space Shooter configuration.
// Search order: customPath -> ~/.shooter/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
//
// Keys missing from a file keep their default values. A custom path that
// cannot be read, parsed or validated is an error; the fallback locations
// are skipped silently when unusable.
func LoadShooter(customPath string) (ShooterConfig, error) {
	if customPath != "" {
		return loadFile(customPath)
	}
	return loadFirst(searchPaths())
}

// ParseShooter decodes YAML on top of the defaults and validates the result.
func ParseShooter(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile reads and parses a single config file.
func loadFile(path string) (ShooterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultShooterConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseShooter(data)
	if err != nil {
		return DefaultShooterConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFirst returns the first usable config among paths, then the embedded default.
func loadFirst(paths []string) (ShooterConfig, error) {
	for _, p := range paths {
		if cfg, err := loadFile(p); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseShooter(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths lists the fallback config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath("shooter.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "shooter.yaml"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "configs", filename)
}
