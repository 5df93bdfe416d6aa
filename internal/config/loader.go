package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCentipede loads centipede configuration.
// Search order: customPath -> ~/.centipede/configs/centipede.yaml -> ./configs/centipede.yaml -> embedded default
// Files only need to set the keys they change; the rest keep default values.
func LoadCentipede(customPath string) (CentipedeConfig, error) {
	cfg := DefaultCentipedeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("centipede.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultCentipedeConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/centipede.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultCentipedeConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCentipedeYAML, &cfg); err != nil {
		return DefaultCentipedeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".centipede", "configs", filename)
}

// ApplyCentipedePreset modifies the config based on a difficulty preset.
func ApplyCentipedePreset(cfg *CentipedeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 5
		cfg.Spawn.MushroomRate = 40
		cfg.World.DyingMS = 1500
	case DifficultyHard:
		cfg.Player.Health = 2
		cfg.Spawn.MushroomRate = 75
		cfg.Spawn.CentipedeLength = 8
	}
}
