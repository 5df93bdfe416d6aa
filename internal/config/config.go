// Package config provides YAML-based game configuration loading and
// difficulty presets for the centipede game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-centipede/internal/games/centipede/sim"
)

// CentipedeConfig contains all configuration for the centipede game.
type CentipedeConfig struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// WorldConfig defines timing and physics parameters.
type WorldConfig struct {
	DyingMS    float64 `yaml:"dying_ms"`     // How long a creature plays its dying animation
	MaxFrameMS float64 `yaml:"max_frame_ms"` // Upper bound for one frame's elapsed time
	Gravity    float64 `yaml:"gravity"`      // px/ms², applied to creatures that do not fly
}

// PlayerConfig defines the player's spawn point and lives.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"` // Pixels
	SpawnY float64 `yaml:"spawn_y"` // Pixels
	Health int     `yaml:"health"`
}

// SpawnConfig defines population rules.
type SpawnConfig struct {
	MushroomRate         int `yaml:"mushroom_rate"`          // Percent per eligible cell
	BottomMargin         int `yaml:"bottom_margin"`          // Rows kept free of random mushrooms
	CentipedeLength      int `yaml:"centipede_length"`       // Segments per wave
	CentipedeFloorMargin int `yaml:"centipede_floor_margin"` // Rows centipedes never drop into
	SpiderTileX          int `yaml:"spider_tile_x"`
	SpiderTileY          int `yaml:"spider_tile_y"`
}

// ScoringConfig defines point awards that are not per-species values.
type ScoringConfig struct {
	CentipedeHit    int `yaml:"centipede_hit"`
	MushroomHit     int `yaml:"mushroom_hit"`
	SpiderHit       int `yaml:"spider_hit"`
	MushroomRestore int `yaml:"mushroom_restore"`
	WaveBonus       int `yaml:"wave_bonus"`
}

// Validate reports the first invalid field.
func (c CentipedeConfig) Validate() error {
	switch {
	case c.World.DyingMS < 0:
		return errors.New("config: world.dying_ms must not be negative")
	case c.World.MaxFrameMS <= 0:
		return errors.New("config: world.max_frame_ms must be positive")
	case c.Player.Health < 1:
		return errors.New("config: player.health must be at least 1")
	case c.Spawn.MushroomRate < 0 || c.Spawn.MushroomRate > 100:
		return fmt.Errorf("config: spawn.mushroom_rate %d outside 0..100", c.Spawn.MushroomRate)
	case c.Spawn.BottomMargin < 0 || c.Spawn.CentipedeFloorMargin < 0:
		return errors.New("config: spawn margins must not be negative")
	case c.Spawn.CentipedeLength < 1:
		return errors.New("config: spawn.centipede_length must be at least 1")
	}
	return nil
}

// Sim converts the file layout into simulation rules.
func (c CentipedeConfig) Sim(seed int64) sim.Config {
	return sim.Config{
		DyingMS:      c.World.DyingMS,
		Gravity:      c.World.Gravity,
		PlayerSpawnX: c.Player.SpawnX,
		PlayerSpawnY: c.Player.SpawnY,
		PlayerHealth: c.Player.Health,
		Spawn: sim.SpawnConfig{
			Rate:                 c.Spawn.MushroomRate,
			BottomMargin:         c.Spawn.BottomMargin,
			CentipedeLength:      c.Spawn.CentipedeLength,
			CentipedeFloorMargin: c.Spawn.CentipedeFloorMargin,
			SpiderTileX:          c.Spawn.SpiderTileX,
			SpiderTileY:          c.Spawn.SpiderTileY,
		},
		Scoring: sim.ScoringConfig{
			CentipedeHit:    c.Scoring.CentipedeHit,
			MushroomHit:     c.Scoring.MushroomHit,
			SpiderHit:       c.Scoring.SpiderHit,
			MushroomRestore: c.Scoring.MushroomRestore,
			WaveBonus:       c.Scoring.WaveBonus,
		},
		Seed: seed,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset accepts a preset name, case-insensitively. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
