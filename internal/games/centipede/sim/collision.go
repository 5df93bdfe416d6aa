package sim

import "math"

// TileCollision returns the first solid or off-grid tile touched by the box
// spanning e's current and proposed positions. Only one axis should change
// per call. Cells are scanned column by column, top to bottom within each
// column, and the first hit wins even if it is not the nearest.
func (w *World) TileCollision(e *Entity, newX, newY float64) (TileCoord, bool) {
	g := w.grid
	fromX := math.Min(e.X, newX)
	fromY := math.Min(e.Y, newY)
	toX := math.Max(e.X, newX)
	toY := math.Max(e.Y, newY)

	fromTileX := g.PixelsToTiles(fromX)
	fromTileY := g.PixelsToTiles(fromY)
	toTileX := g.PixelsToTiles(toX + float64(e.Width()) - 1)
	toTileY := g.PixelsToTiles(toY + float64(e.Height()) - 1)

	for x := fromTileX; x <= toTileX; x++ {
		for y := fromTileY; y <= toTileY; y++ {
			if g.Solid(x, y) {
				return TileCoord{X: x, Y: y}, true
			}
		}
	}
	return TileCoord{}, false
}

// SpriteCollision reports whether a and b overlap and can interact.
// Identical creatures, creatures that are not Normal, and two members of
// a flocking species never collide.
func SpriteCollision(a, b *Creature) bool {
	if a == b || a == nil || b == nil {
		return false
	}
	if a.species == b.species && behaviors[a.species].flocking {
		return false
	}
	if !a.Alive() || !b.Alive() {
		return false
	}
	return a.Bounds().Intersects(b.Bounds())
}

// FirstSpriteCollision returns the first registered creature colliding
// with c, in registry order, or nil.
func (w *World) FirstSpriteCollision(c *Creature) *Creature {
	var hit *Creature
	w.sprites.Each(func(other *Creature) bool {
		if SpriteCollision(c, other) {
			hit = other
			return false
		}
		return true
	})
	return hit
}
