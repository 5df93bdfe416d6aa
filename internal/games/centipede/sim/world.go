package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-centipede/internal/core"
)

// ErrNoMap is returned by a MapProvider that has nothing to load.
var ErrNoMap = errors.New("sim: no map available")

// Placement is a creature requested by the map file.
type Placement struct {
	Species      Species
	TileX, TileY int
}

// Level is a parsed map: a tile grid plus its initial creatures.
// Reaching any goal cell moves the player on to the next map.
type Level struct {
	Name       string
	Index      int
	Grid       *TileGrid
	Placements []Placement
	Goals      []TileCoord
}

// MapProvider supplies levels. LoadNext advances through the map sequence,
// wrapping to the first map; Reload parses the current map again.
type MapProvider interface {
	LoadNext() (*Level, error)
	Reload() (*Level, error)
}

// Input is the set of controls held during a frame.
type Input struct {
	Left, Right, Up, Down bool
	Fire                  bool
}

// Stats are counters kept across a session.
type Stats struct {
	Waves     int     // centipede waves cleared
	Deaths    int     // lives lost
	ElapsedMS float64 // simulated time since the run started
	Levels    int     // maps completed through a goal
	Frames    int
}

// World owns one game session. It is not safe for concurrent use.
type World struct {
	cfg     Config
	maps    MapProvider
	grid    *TileGrid
	sprites *Registry
	player  *Creature
	spawner *Spawner
	level   *Level

	score  int
	halted bool
	events []Event

	waves   int
	deaths  int
	levels  int
	elapsed float64
	frames  int
}

// NewWorld creates a halted world. Call Start to load the first map.
// A zero seed picks one from the clock.
func NewWorld(cfg Config, maps MapProvider) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w := &World{
		cfg:    cfg,
		maps:   maps,
		grid:   NewTileGrid(0, 0, TileSize),
		halted: true,
	}
	w.sprites = NewRegistry(w.grid)
	w.spawner = &Spawner{w: w, rng: rand.New(rand.NewSource(seed))} //#nosec G404 -- gameplay randomness
	return w
}

// Start loads the first map and populates it. If no map is available the
// world stays halted and Step does nothing.
func (w *World) Start() error {
	lvl, err := w.maps.LoadNext()
	if err != nil {
		w.halt()
		return fmt.Errorf("sim: start: %w", err)
	}
	w.score = 0
	w.resetCounters()
	w.populate(lvl)
	w.emit(EventLevelLoaded, SpeciesPlayer, w.player.X, w.player.Y)
	return nil
}

// NextLevel advances to the next map of the sequence. The run goes on:
// score and counters carry over.
func (w *World) NextLevel() error {
	lvl, err := w.maps.LoadNext()
	if err != nil {
		w.halt()
		return fmt.Errorf("sim: next level: %w", err)
	}
	w.levels++
	w.populate(lvl)
	w.emit(EventLevelLoaded, SpeciesPlayer, w.player.X, w.player.Y)
	return nil
}

// Step advances the world by elapsedMS milliseconds.
func (w *World) Step(in Input, elapsedMS float64) {
	if w.halted {
		return
	}

	if w.player.state == StateDead {
		_ = w.reset() // a failed reload leaves the world halted
		return
	}

	w.elapsed += elapsedMS
	w.frames++

	w.applyInput(in)
	w.updateCreature(w.player, elapsedMS)
	w.player.Update(elapsedMS, w.cfg.DyingMS)

	if w.reachedGoal() {
		w.emit(EventGoalReached, SpeciesPlayer, w.player.X, w.player.Y)
		_ = w.NextLevel() // a failed load leaves the world halted
		return
	}

	w.sprites.Each(func(c *Creature) bool {
		if c.state == StateDead {
			w.reap(c)
			return true
		}
		w.updateCreature(c, elapsedMS)
		c.Update(elapsedMS, w.cfg.DyingMS)
		return true
	})
	w.reapDead()

	w.spawner.maintainWaves()
}

// Restart reloads the current map and begins a new run, the same way a
// final player death does. A world that never loaded a map starts instead.
func (w *World) Restart() error {
	if w.level == nil {
		return w.Start()
	}
	if err := w.reset(); err != nil {
		return fmt.Errorf("sim: restart: %w", err)
	}
	return nil
}

// reset rebuilds the session after the player died for good.
func (w *World) reset() error {
	prev := w.score
	lvl, err := w.maps.Reload()
	if err != nil {
		w.halt()
		return err
	}
	w.score = 0
	w.resetCounters()
	w.populate(lvl)
	w.events = append(w.events, Event{Kind: EventLevelReset, Species: SpeciesPlayer, X: w.player.X, Y: w.player.Y, Score: prev})
	return nil
}

// populate installs lvl and spawns the initial creatures.
func (w *World) populate(lvl *Level) {
	w.level = lvl
	w.grid = lvl.Grid
	w.sprites.Clear()
	w.sprites.setGrid(w.grid)
	w.halted = false

	for _, p := range lvl.Placements {
		w.spawner.SpawnAt(p.Species, p.TileX, p.TileY)
	}

	w.player = SpeciesPlayer.New()
	w.player.X, w.player.Y = w.cfg.PlayerSpawnX, w.cfg.PlayerSpawnY
	w.player.health = w.cfg.PlayerHealth

	w.spawner.SpawnMushrooms()
	w.spawner.SpawnCentipedeWave()
	if w.sprites.CountAlive(SpeciesSpider) == 0 {
		w.spawner.SpawnSpider()
	}
}

func (w *World) resetCounters() {
	w.waves, w.deaths, w.levels = 0, 0, 0
	w.elapsed, w.frames = 0, 0
}

// reachedGoal reports whether the living player overlaps a goal cell.
func (w *World) reachedGoal() bool {
	if w.level == nil || !w.player.Alive() {
		return false
	}
	b := w.player.Bounds()
	t := w.grid.TileSize
	for _, g := range w.level.Goals {
		if b.Intersects(core.NewRect(g.X*t, g.Y*t, t, t)) {
			return true
		}
	}
	return false
}

func (w *World) halt() {
	w.halted = true
	w.sprites.Clear()
}

func (w *World) applyInput(in Input) {
	p := w.player
	if !p.Alive() {
		return
	}
	speed := p.MaxSpeed()
	var vx, vy float64
	if in.Left {
		vx -= speed
	}
	if in.Right {
		vx += speed
	}
	if in.Up {
		vy -= speed
	}
	if in.Down {
		vy += speed
	}
	if in.Fire {
		tx, ty := w.grid.PixelsToTiles(p.X), w.grid.PixelsToTiles(p.Y)
		l := w.spawner.SpawnAt(SpeciesLaser, tx, ty-1)
		w.emit(EventShoot, SpeciesLaser, l.X, l.Y)
	}
	p.Command(vx, vy)
}

// reap removes a Dead creature and pays its points. Mushrooms pay only
// when restored, never on removal.
func (w *World) reap(c *Creature) {
	if !w.sprites.Remove(c) {
		return
	}
	if c.species == SpeciesMushroom {
		return
	}
	if pts := c.species.Points(); pts > 0 {
		w.addScore(pts)
		w.emit(EventKill, c.species, c.X, c.Y)
	}
}

func (w *World) reapDead() {
	w.sprites.Each(func(c *Creature) bool {
		if c.state == StateDead {
			w.reap(c)
		}
		return true
	})
}

func (w *World) addScore(n int) {
	if n > 0 {
		w.score += n
	}
}

// Events returns and clears the notifications queued since the last call.
func (w *World) Events() []Event {
	ev := w.events
	w.events = nil
	return ev
}

// Grid returns the current tile grid.
func (w *World) Grid() *TileGrid { return w.grid }

// Sprites returns the creature registry.
func (w *World) Sprites() *Registry { return w.sprites }

// Player returns the player creature, or nil before Start.
func (w *World) Player() *Creature { return w.player }

// Spawner returns the world's spawner.
func (w *World) Spawner() *Spawner { return w.spawner }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Level returns the loaded level, or nil before Start.
func (w *World) Level() *Level { return w.level }

// Halted reports whether the world stopped for lack of a map.
func (w *World) Halted() bool { return w.halted }

// Config returns the rules the world runs with.
func (w *World) Config() Config { return w.cfg }

// Stats returns the session counters.
func (w *World) Stats() Stats {
	return Stats{Waves: w.waves, Deaths: w.deaths, Levels: w.levels, ElapsedMS: w.elapsed, Frames: w.frames}
}
