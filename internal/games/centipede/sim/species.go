package sim

// Species is the closed set of creature kinds living in the world.
type Species uint8

const (
	SpeciesPlayer Species = iota
	SpeciesLaser
	SpeciesCentipede
	SpeciesMushroom
	SpeciesSpider
	speciesCount
)

// AnimKey selects one of the four animations a creature carries.
type AnimKey uint8

const (
	AnimLeft AnimKey = iota
	AnimRight
	AnimDeadLeft
	AnimDeadRight
	animKeyCount
)

// behavior holds everything that differs between species.
type behavior struct {
	name     string
	maxSpeed float64 // px/ms
	health   int
	points   int

	flying    bool // exempt from gravity
	dyingHold bool // health 0 enters Dying; otherwise health < 1 is Dead at once
	flocking  bool // members never collide with each other
	hostile   bool // touching the player triggers the death sequence

	frames [animKeyCount][]Frame

	wake       func(c *Creature)
	collideX   func(w *World, c *Creature)
	collideY   func(w *World, c *Creature)
	selectAnim func(c *Creature) AnimKey
}

var behaviors [speciesCount]behavior

func init() {
	behaviors[SpeciesPlayer] = behavior{
		name:      "player",
		maxSpeed:  0.4,
		health:    3,
		flying:    true,
		dyingHold: true,
		frames: [animKeyCount][]Frame{
			AnimLeft:      {{Glyph: '▲', W: 48, H: 48, Duration: 150}, {Glyph: '△', W: 48, H: 48, Duration: 150}},
			AnimRight:     {{Glyph: '▲', W: 48, H: 48, Duration: 150}, {Glyph: '△', W: 48, H: 48, Duration: 150}},
			AnimDeadLeft:  {{Glyph: '✖', W: 48, H: 48, Duration: 200}, {Glyph: '+', W: 48, H: 48, Duration: 200}},
			AnimDeadRight: {{Glyph: '✖', W: 48, H: 48, Duration: 200}, {Glyph: '+', W: 48, H: 48, Duration: 200}},
		},
		wake:       func(*Creature) {},
		collideX:   stopX,
		collideY:   stopY,
		selectAnim: animByDirection,
	}

	behaviors[SpeciesLaser] = behavior{
		name:      "laser",
		maxSpeed:  0.5,
		health:    -1,
		flying:    true,
		dyingHold: true,
		frames: [animKeyCount][]Frame{
			AnimLeft:      {{Glyph: '|', W: 8, H: 32, Duration: 100}, {Glyph: '¦', W: 8, H: 32, Duration: 100}},
			AnimRight:     {{Glyph: '|', W: 8, H: 32, Duration: 100}, {Glyph: '¦', W: 8, H: 32, Duration: 100}},
			AnimDeadLeft:  {{Glyph: '.', W: 8, H: 32}},
			AnimDeadRight: {{Glyph: '.', W: 8, H: 32}},
		},
		wake: func(c *Creature) {
			if c.state == StateNormal && c.VY == 0 {
				c.VY = -c.MaxSpeed()
			}
		},
		collideX:   expire,
		collideY:   expire,
		selectAnim: animByDirection,
	}

	behaviors[SpeciesCentipede] = behavior{
		name:      "centipede",
		maxSpeed:  0.05,
		health:    1,
		points:    10,
		dyingHold: true,
		flocking:  true,
		hostile:   true,
		frames: [animKeyCount][]Frame{
			AnimLeft:      {{Glyph: 'O', W: 56, H: 56, Duration: 250}, {Glyph: '0', W: 56, H: 56, Duration: 250}},
			AnimRight:     {{Glyph: '0', W: 56, H: 56, Duration: 250}, {Glyph: 'O', W: 56, H: 56, Duration: 250}},
			AnimDeadLeft:  {{Glyph: '*', W: 56, H: 56, Duration: 250}, {Glyph: '·', W: 56, H: 56, Duration: 250}},
			AnimDeadRight: {{Glyph: '*', W: 56, H: 56, Duration: 250}, {Glyph: '·', W: 56, H: 56, Duration: 250}},
		},
		wake:       wakeLeft,
		collideX:   reverseAndDrop,
		collideY:   reverseY,
		selectAnim: animByDirection,
	}

	// Mushroom frames encode wear, not direction:
	// AnimLeft is full, AnimRight worn, AnimDeadLeft cracked.
	behaviors[SpeciesMushroom] = behavior{
		name:   "mushroom",
		health: 3,
		points: 5,
		flying: true,
		frames: [animKeyCount][]Frame{
			AnimLeft:      {{Glyph: '█', W: 56, H: 56}},
			AnimRight:     {{Glyph: '▓', W: 56, H: 56}},
			AnimDeadLeft:  {{Glyph: '▒', W: 56, H: 56}},
			AnimDeadRight: {{Glyph: '░', W: 56, H: 56}},
		},
		wake:       func(*Creature) {},
		collideX:   reverseX,
		collideY:   reverseY,
		selectAnim: animByWear,
	}

	behaviors[SpeciesSpider] = behavior{
		name:      "spider",
		maxSpeed:  0.2,
		health:    2,
		points:    600,
		flying:    true,
		dyingHold: true,
		hostile:   true,
		frames: [animKeyCount][]Frame{
			AnimLeft:      {{Glyph: 'W', W: 56, H: 48, Duration: 120}, {Glyph: 'M', W: 56, H: 48, Duration: 120}},
			AnimRight:     {{Glyph: 'M', W: 56, H: 48, Duration: 120}, {Glyph: 'W', W: 56, H: 48, Duration: 120}},
			AnimDeadLeft:  {{Glyph: 'x', W: 56, H: 48, Duration: 200}, {Glyph: '·', W: 56, H: 48, Duration: 200}},
			AnimDeadRight: {{Glyph: 'x', W: 56, H: 48, Duration: 200}, {Glyph: '·', W: 56, H: 48, Duration: 200}},
		},
		wake: func(c *Creature) {
			if c.state == StateNormal && c.VX == 0 {
				c.VX = -c.MaxSpeed()
				c.VY = c.MaxSpeed()
			}
		},
		collideX:   reverseX,
		collideY:   reverseY,
		selectAnim: animByDirection,
	}
}

// String returns the lowercase species name.
func (s Species) String() string {
	if s >= speciesCount {
		return "unknown"
	}
	return behaviors[s].name
}

// MaxSpeed returns the species speed in px/ms.
func (s Species) MaxSpeed() float64 { return behaviors[s].maxSpeed }

// Points returns the score awarded when a creature of this species is reaped.
func (s Species) Points() int { return behaviors[s].points }

// Hostile reports whether touching the player costs a life.
func (s Species) Hostile() bool { return behaviors[s].hostile }

// New builds a fresh creature of this species in the Normal state.
func (s Species) New() *Creature {
	b := &behaviors[s]
	c := &Creature{
		species: s,
		health:  b.health,
		state:   StateNormal,
	}
	for k, frames := range b.frames {
		c.anims[k] = NewAnimation(frames...)
	}
	c.animKey = AnimRight
	c.anim = c.anims[AnimRight]
	if s == SpeciesMushroom {
		c.animKey = animByWear(c)
		c.anim = c.anims[c.animKey]
	}
	return c
}

func wakeLeft(c *Creature) {
	if c.state == StateNormal && c.VX == 0 {
		c.VX = -c.MaxSpeed()
	}
}

func stopX(_ *World, c *Creature) { c.VX = 0 }
func stopY(_ *World, c *Creature) { c.VY = 0 }

func reverseX(_ *World, c *Creature) { c.VX = -c.VX }
func reverseY(_ *World, c *Creature) { c.VY = -c.VY }

func expire(_ *World, c *Creature) { c.SetState(StateDead) }

// reverseAndDrop turns a centipede around and steps it one tile down,
// unless the row below is blocked or past the configured floor.
func reverseAndDrop(w *World, c *Creature) {
	c.VX = -c.VX

	t := float64(w.grid.TileSize)
	floor := float64((w.grid.H - w.cfg.Spawn.CentipedeFloorMargin) * w.grid.TileSize)
	if c.Y+t+float64(c.Height()) > floor {
		return
	}
	if _, hit := w.TileCollision(&c.Entity, c.X, c.Y+t); hit {
		return
	}
	c.Y += t
}

func animByDirection(c *Creature) AnimKey {
	key := c.animKey
	if c.VX < 0 {
		key = AnimLeft
	} else if c.VX > 0 {
		key = AnimRight
	} else if key == AnimDeadLeft {
		key = AnimLeft
	} else if key == AnimDeadRight {
		key = AnimRight
	}

	if c.state == StateDying {
		if key == AnimLeft {
			return AnimDeadLeft
		}
		return AnimDeadRight
	}
	return key
}

func animByWear(c *Creature) AnimKey {
	switch c.health {
	case 3:
		return AnimLeft
	case 2:
		return AnimRight
	case 1:
		return AnimDeadLeft
	default:
		return AnimDeadRight
	}
}
