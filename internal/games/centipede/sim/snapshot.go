package sim

// Snapshot is a flat, read-only view of the world used by renderers and
// determinism tests. Positions are rounded to whole pixels.
type Snapshot struct {
	Frame   uint64
	Score   int
	Level   string
	Halted  bool
	PlayerX int
	PlayerY int
	Health  int
	State   State

	// Each creature is 5 ints: Species, X, Y, State, Health
	CreatureCount int
	CreatureData  []int
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:  uint64(w.frames), //#nosec G115 -- frame count is always positive
		Score:  w.score,
		Halted: w.halted,
	}
	if w.level != nil {
		snap.Level = w.level.Name
	}
	if w.player != nil {
		snap.PlayerX = roundPixel(w.player.X)
		snap.PlayerY = roundPixel(w.player.Y)
		snap.Health = w.player.health
		snap.State = w.player.state
	}

	creatures := w.sprites.Snapshot()
	snap.CreatureCount = len(creatures)
	snap.CreatureData = make([]int, 0, len(creatures)*5)
	for _, c := range creatures {
		snap.CreatureData = append(snap.CreatureData,
			int(c.species), roundPixel(c.X), roundPixel(c.Y), int(c.state), c.health)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CreatureCount) //#nosec G115 -- hash computation

	for _, v := range snap.CreatureData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
