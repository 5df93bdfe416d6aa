package config

import (
	_ "embed"
)

//go:embed defaults/centipede.yaml
var defaultCentipedeYAML []byte

// DefaultCentipedeConfig returns the default centipede configuration.
func DefaultCentipedeConfig() CentipedeConfig {
	return CentipedeConfig{
		World: WorldConfig{
			DyingMS:    1000,
			MaxFrameMS: 100,
			Gravity:    0,
		},
		Player: PlayerConfig{
			SpawnX: 400,
			SpawnY: 400,
			Health: 3,
		},
		Spawn: SpawnConfig{
			MushroomRate:         60,
			BottomMargin:         8,
			CentipedeLength:      5,
			CentipedeFloorMargin: 0,
			SpiderTileX:          0,
			SpiderTileY:          25,
		},
		Scoring: ScoringConfig{
			CentipedeHit:    2,
			MushroomHit:     1,
			SpiderHit:       100,
			MushroomRestore: 10,
			WaveBonus:       600,
		},
	}
}
