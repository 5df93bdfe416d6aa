package sim

// updateCreature moves c along X then Y, snapping to the blocking tile on
// each axis, then resolves sprite contact.
func (w *World) updateCreature(c *Creature, elapsed float64) {
	b := &behaviors[c.species]
	g := w.grid

	if !b.flying && c.Alive() {
		c.VY += w.cfg.Gravity * elapsed
	}

	dx := c.VX
	newX := c.X + dx*elapsed
	if tile, hit := w.TileCollision(&c.Entity, newX, c.Y); !hit {
		c.X = newX
	} else {
		if dx > 0 {
			c.X = g.TilesToPixels(tile.X) - float64(c.Width())
		} else if dx < 0 {
			c.X = g.TilesToPixels(tile.X + 1)
		}
		b.collideX(w, c)
	}
	if c == w.player {
		w.checkPlayerCollision()
	}

	dy := c.VY
	newY := c.Y + dy*elapsed
	if tile, hit := w.TileCollision(&c.Entity, c.X, newY); !hit {
		c.Y = newY
	} else {
		if dy > 0 {
			c.Y = g.TilesToPixels(tile.Y) - float64(c.Height())
		} else if dy < 0 {
			c.Y = g.TilesToPixels(tile.Y + 1)
		}
		b.collideY(w, c)
	}
	if c == w.player {
		w.checkPlayerCollision()
		return
	}

	w.resolveContact(c)
}

// checkPlayerCollision runs the death sequence when the player touches a
// hostile creature: lose a life, go back to the spawn point, restore worn
// mushrooms and replace every hostile wave.
func (w *World) checkPlayerCollision() {
	p := w.player
	if !p.Alive() {
		return
	}
	hit := w.FirstSpriteCollision(p)
	if hit == nil || !hit.species.Hostile() {
		return
	}

	p.SetHealth(p.health - 1)
	p.X, p.Y = w.cfg.PlayerSpawnX, w.cfg.PlayerSpawnY
	w.deaths++
	w.emit(EventPlayerHit, hit.species, p.X, p.Y)
	if p.state == StateDying {
		w.emit(EventPlayerDown, SpeciesPlayer, p.X, p.Y)
	}

	w.restoreMushrooms()

	w.sprites.RemoveSpecies(SpeciesCentipede)
	w.spawner.SpawnCentipedeWave()

	w.sprites.RemoveSpecies(SpeciesSpider)
	w.spawner.SpawnSpider()
}

func (w *World) restoreMushrooms() {
	full := behaviors[SpeciesMushroom].health
	w.sprites.Each(func(c *Creature) bool {
		if c.species == SpeciesMushroom && c.health < full {
			c.SetHealth(full)
			w.addScore(w.cfg.Scoring.MushroomRestore)
		}
		return true
	})
}
