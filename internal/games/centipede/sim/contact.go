package sim

// reaction applies the effect of mover touching hit.
type reaction func(w *World, mover, hit *Creature)

// reactions is indexed [mover][hit]. A nil entry means the pair is inert.
var reactions [speciesCount][speciesCount]reaction

func init() {
	reactions[SpeciesCentipede][SpeciesLaser] = func(w *World, mover, hit *Creature) {
		mover.SetHealth(mover.health - 1)
		w.addScore(w.cfg.Scoring.CentipedeHit)
		hit.SetState(StateDead)
		w.emit(EventHit, SpeciesCentipede, mover.X, mover.Y)
	}
	// A mushroom only turns the centipede around. Dropping a row is left to
	// walls, since the row below may hold more mushrooms.
	reactions[SpeciesCentipede][SpeciesMushroom] = func(w *World, mover, _ *Creature) {
		reverseX(w, mover)
	}
	reactions[SpeciesLaser][SpeciesMushroom] = func(w *World, mover, hit *Creature) {
		hit.SetHealth(hit.health - 1)
		w.addScore(w.cfg.Scoring.MushroomHit)
		mover.SetState(StateDead)
		w.emit(EventHit, SpeciesMushroom, hit.X, hit.Y)
	}
	reactions[SpeciesLaser][SpeciesSpider] = func(w *World, mover, hit *Creature) {
		hit.SetHealth(hit.health - 1)
		w.addScore(w.cfg.Scoring.SpiderHit)
		mover.SetState(StateDead)
		w.emit(EventHit, SpeciesSpider, hit.X, hit.Y)
	}
}

// resolveContact applies the reaction for c and the first creature it
// touches. Only the mover's own pass triggers a reaction.
func (w *World) resolveContact(c *Creature) {
	hit := w.FirstSpriteCollision(c)
	if hit == nil {
		return
	}
	if react := reactions[c.species][hit.species]; react != nil {
		react(w, c, hit)
	}
}
