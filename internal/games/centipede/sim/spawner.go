package sim

import "math/rand"

// Spawner places creatures and maintains the hostile waves.
type Spawner struct {
	w   *World
	rng *rand.Rand
}

// SpawnAt clones the species template into tile (tx, ty), centred
// horizontally and resting on the tile's bottom edge, and wakes it.
func (s *Spawner) SpawnAt(sp Species, tx, ty int) *Creature {
	c := sp.New()
	t := s.w.grid.TileSize
	c.X = float64(tx*t + (t-c.Width())/2)
	c.Y = float64((ty+1)*t - c.Height())
	c.WakeUp()
	s.w.sprites.Add(c)
	return c
}

// SpawnMushrooms rolls a mushroom into every interior cell whose two
// upper diagonal neighbours are free. It returns how many were placed.
func (s *Spawner) SpawnMushrooms() int {
	g := s.w.grid
	cfg := s.w.cfg.Spawn
	placed := 0
	for y := 1; y < g.H-cfg.BottomMargin; y++ {
		for x := 1; x < g.W-1; x++ {
			if s.w.sprites.SpriteAt(x-1, y-1) != nil || s.w.sprites.SpriteAt(x+1, y-1) != nil {
				continue
			}
			if s.rng.Intn(100) < cfg.Rate {
				s.SpawnAt(SpeciesMushroom, x, y)
				placed++
			}
		}
	}
	return placed
}

// SpawnCentipedeWave lays a line of segments along the top-right of the grid.
func (s *Spawner) SpawnCentipedeWave() {
	g := s.w.grid
	n := s.w.cfg.Spawn.CentipedeLength
	start := g.W - n
	if start < 0 {
		start = 0
	}
	for x := start; x < g.W; x++ {
		s.SpawnAt(SpeciesCentipede, x, 0)
	}
}

// SpawnSpider places a single spider at the configured tile.
func (s *Spawner) SpawnSpider() *Creature {
	cfg := s.w.cfg.Spawn
	c := s.SpawnAt(SpeciesSpider, cfg.SpiderTileX, cfg.SpiderTileY)
	s.w.emit(EventSpiderSpawned, SpeciesSpider, c.X, c.Y)
	return c
}

// maintainWaves replaces an extinct centipede wave, paying the bonus, and
// an extinct spider.
func (s *Spawner) maintainWaves() {
	w := s.w
	if w.sprites.CountAlive(SpeciesCentipede) == 0 {
		w.addScore(w.cfg.Scoring.WaveBonus)
		w.waves++
		s.SpawnCentipedeWave()
		w.emit(EventWaveCleared, SpeciesCentipede, 0, 0)
	}
	if w.sprites.CountAlive(SpeciesSpider) == 0 {
		s.SpawnSpider()
	}
}
