package sim

// State is a creature's position in its life cycle.
type State uint8

const (
	StateNormal State = iota
	StateDying
	StateDead
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateDying:
		return "dying"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Creature is an Entity with health and a life cycle.
// State moves Normal -> Dying -> Dead; SetState can jump anywhere and
// callers must not bring a Dead creature back.
type Creature struct {
	Entity

	species   Species
	state     State
	stateTime float64 // ms since the last state change
	health    int

	anims   [animKeyCount]*Animation
	animKey AnimKey
}

// Species returns the creature's kind.
func (c *Creature) Species() Species { return c.species }

// State returns the current life-cycle state.
func (c *Creature) State() State { return c.state }

// StateTime returns milliseconds spent in the current state.
func (c *Creature) StateTime() float64 { return c.stateTime }

// Health returns the hit-point counter. Mushrooms use it as durability.
func (c *Creature) Health() int { return c.health }

// MaxSpeed returns the species speed in px/ms.
func (c *Creature) MaxSpeed() float64 { return behaviors[c.species].maxSpeed }

// Alive reports whether the creature is in the Normal state.
func (c *Creature) Alive() bool { return c.state == StateNormal }

// SetState changes state. Entering Dying stops the creature.
func (c *Creature) SetState(s State) {
	if c.state == s {
		return
	}
	c.state = s
	c.stateTime = 0
	if s == StateDying {
		c.VX, c.VY = 0, 0
	}
}

// SetHealth updates health and applies the death rule of the species.
func (c *Creature) SetHealth(h int) {
	c.health = h
	if !behaviors[c.species].dyingHold {
		if h < 1 {
			c.SetState(StateDead)
		}
		return
	}
	if h == 0 {
		c.SetState(StateDying)
	}
}

// Command sets the velocity. Creatures that are not Normal ignore it.
func (c *Creature) Command(vx, vy float64) {
	if c.state != StateNormal {
		return
	}
	c.VX, c.VY = vx, vy
}

// WakeUp gives a freshly spawned creature its initial velocity.
func (c *Creature) WakeUp() {
	behaviors[c.species].wake(c)
}

// Update picks the animation, advances it, and runs the Dying timer.
func (c *Creature) Update(elapsedMS, dyingMS float64) {
	key := behaviors[c.species].selectAnim(c)
	if key != c.animKey {
		c.animKey = key
		c.anim = c.anims[key]
		c.anim.Start()
	} else {
		c.anim.Update(elapsedMS)
	}

	c.stateTime += elapsedMS
	if c.state == StateDying && c.stateTime >= dyingMS {
		c.SetState(StateDead)
	}
}
