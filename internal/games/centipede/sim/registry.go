package sim

// Registry is the ordered set of live creatures on a level, the player
// excluded. Removal is safe while Each is running: the slot is cleared
// and the slice is compacted once the outermost Each returns.
type Registry struct {
	items     []*Creature
	iterating int
	dirty     bool
	grid      *TileGrid
}

// NewRegistry returns an empty registry that looks up creatures by tile on grid.
func NewRegistry(grid *TileGrid) *Registry {
	return &Registry{grid: grid}
}

// Add appends a creature.
func (r *Registry) Add(c *Creature) {
	r.items = append(r.items, c)
}

// Remove drops c by identity. It reports whether c was present.
func (r *Registry) Remove(c *Creature) bool {
	for i, it := range r.items {
		if it != c {
			continue
		}
		if r.iterating > 0 {
			r.items[i] = nil
			r.dirty = true
		} else {
			r.items = append(r.items[:i], r.items[i+1:]...)
		}
		return true
	}
	return false
}

// Each visits creatures in insertion order. Creatures added during the
// walk are visited in the same pass; removed ones are never visited again.
// Returning false from fn stops the walk.
func (r *Registry) Each(fn func(c *Creature) bool) {
	r.iterating++
	defer func() {
		r.iterating--
		if r.iterating == 0 && r.dirty {
			r.compact()
		}
	}()

	for i := 0; i < len(r.items); i++ {
		c := r.items[i]
		if c == nil {
			continue
		}
		if !fn(c) {
			return
		}
	}
}

func (r *Registry) compact() {
	live := r.items[:0]
	for _, c := range r.items {
		if c != nil {
			live = append(live, c)
		}
	}
	for i := len(live); i < len(r.items); i++ {
		r.items[i] = nil
	}
	r.items = live
	r.dirty = false
}

// SpriteAt returns the first creature whose top-left pixel falls in tile
// (tx, ty), or nil. Coordinates outside the grid always yield nil.
func (r *Registry) SpriteAt(tx, ty int) *Creature {
	if !r.grid.InBounds(tx, ty) {
		return nil
	}
	var found *Creature
	r.Each(func(c *Creature) bool {
		if r.grid.PixelsToTiles(c.X) == tx && r.grid.PixelsToTiles(c.Y) == ty {
			found = c
			return false
		}
		return true
	})
	return found
}

// Len returns the number of creatures, pending removals excluded.
func (r *Registry) Len() int {
	n := 0
	for _, c := range r.items {
		if c != nil {
			n++
		}
	}
	return n
}

// Count returns how many creatures of species s are registered.
func (r *Registry) Count(s Species) int {
	n := 0
	for _, c := range r.items {
		if c != nil && c.species == s {
			n++
		}
	}
	return n
}

// CountAlive returns how many creatures of species s are Normal.
func (r *Registry) CountAlive(s Species) int {
	n := 0
	for _, c := range r.items {
		if c != nil && c.species == s && c.state == StateNormal {
			n++
		}
	}
	return n
}

// RemoveSpecies drops every creature of species s.
func (r *Registry) RemoveSpecies(s Species) {
	var doomed []*Creature
	for _, c := range r.items {
		if c != nil && c.species == s {
			doomed = append(doomed, c)
		}
	}
	for _, c := range doomed {
		r.Remove(c)
	}
}

// Clear empties the registry.
func (r *Registry) Clear() {
	if r.iterating > 0 {
		for i := range r.items {
			r.items[i] = nil
		}
		r.dirty = true
		return
	}
	r.items = nil
}

// Snapshot returns the live creatures in order. The slice is a copy.
func (r *Registry) Snapshot() []*Creature {
	out := make([]*Creature, 0, len(r.items))
	for _, c := range r.items {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (r *Registry) setGrid(g *TileGrid) {
	r.grid = g
}
