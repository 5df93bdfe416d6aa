package sim

// SpawnConfig controls population rules.
type SpawnConfig struct {
	Rate                 int // Percent chance per eligible mushroom cell
	BottomMargin         int // Rows at the bottom kept free of mushrooms
	CentipedeLength      int
	CentipedeFloorMargin int // Rows at the bottom centipedes never drop into
	SpiderTileX          int
	SpiderTileY          int
}

// ScoringConfig holds the point awards that are not species values.
type ScoringConfig struct {
	CentipedeHit    int
	MushroomHit     int
	SpiderHit       int
	MushroomRestore int
	WaveBonus       int
}

// Config parameterizes a World.
type Config struct {
	DyingMS      float64
	Gravity      float64 // px/ms², applied to species that do not fly
	PlayerSpawnX float64
	PlayerSpawnY float64
	PlayerHealth int
	Spawn        SpawnConfig
	Scoring      ScoringConfig
	Seed         int64
}

// DefaultConfig returns the classic rules.
func DefaultConfig() Config {
	return Config{
		DyingMS:      1000,
		Gravity:      0,
		PlayerSpawnX: 400,
		PlayerSpawnY: 400,
		PlayerHealth: 3,
		Spawn: SpawnConfig{
			Rate:            60,
			BottomMargin:    8,
			CentipedeLength: 5,
			SpiderTileX:     0,
			SpiderTileY:     25,
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
