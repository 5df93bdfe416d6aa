package centipede

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-centipede/internal/core"
	"github.com/vovakirdan/tui-centipede/internal/games/centipede/sim"
)

// Rendering layout: each tile is cellW columns by one row, below a single
// HUD line.
const (
	cellW   = 2
	hudRows = 1
)

var tileColors = []core.Color{
	core.ColorGreen,
	core.ColorBlue,
	core.ColorCyan,
	core.ColorYellow,
	core.ColorMagenta,
}

var speciesColors = [...]core.Color{
	sim.SpeciesPlayer:    core.ColorBrightCyan,
	sim.SpeciesLaser:     core.ColorBrightYellow,
	sim.SpeciesCentipede: core.ColorBrightGreen,
	sim.SpeciesMushroom:  core.ColorOrange,
	sim.SpeciesSpider:    core.ColorBrightMagenta,
}

// Render draws the visible part of the world and the HUD into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil || g.world.Halted() {
		g.drawNoMap(dst)
		return
	}

	cam := g.camera(dst)
	g.drawTiles(dst, cam)
	player := g.world.Player()
	for _, c := range g.world.Sprites().Snapshot() {
		if c != player {
			drawCreature(dst, cam, c)
		}
	}
	drawCreature(dst, cam, player)
	g.drawHUD(dst)

	if g.paused {
		mid := dst.Height() / 2
		box := core.NewRect((dst.Width()-23)/2, mid-2, 23, 5)
		dst.DrawRect(box, ' ')
		dst.DrawBox(box)
		dst.DrawTextCenteredColor(mid-1, "PAUSED", core.ColorBrightWhite)
		dst.DrawTextCenteredColor(mid, "Press P to resume", core.ColorGray)
	}
}

// camera returns the window of tiles shown on screen. It follows the
// player and is clamped to the grid.
func (g *Game) camera(dst *core.Screen) core.Rect {
	grid := g.world.Grid()
	v := core.NewRect(0, 0, dst.Width()/cellW, dst.Height()-hudRows)

	b := g.world.Player().Bounds()
	px, py := b.Center()
	v.X = core.Clamp(px/grid.TileSize-v.W/2, 0, core.Max(0, grid.W-v.W))
	v.Y = core.Clamp(py/grid.TileSize-v.H/2, 0, core.Max(0, grid.H-v.H))
	return v
}

func (g *Game) drawTiles(dst *core.Screen, v core.Rect) {
	grid := g.world.Grid()
	for ty := v.Y; ty < v.Bottom() && ty < grid.H; ty++ {
		for tx := v.X; tx < v.Right() && tx < grid.W; tx++ {
			t := grid.Tile(tx, ty)
			if t == sim.NoTile {
				continue
			}
			col := tileColors[int(t)%len(tileColors)]
			sx, sy := (tx-v.X)*cellW, ty-v.Y+hudRows
			for i := 0; i < cellW; i++ {
				dst.SetColor(sx+i, sy, '▓', col)
			}
		}
	}
	for _, goal := range g.world.Level().Goals {
		if v.Contains(goal.X, goal.Y) {
			sx, sy := (goal.X-v.X)*cellW, goal.Y-v.Y+hudRows
			dst.SetColor(sx, sy, '◆', core.ColorBrightYellow)
			dst.SetColor(sx+1, sy, '◆', core.ColorBrightYellow)
		}
	}
}

// drawCreature places a creature's glyph at the tile holding its center.
// Creatures narrower than half a tile occupy one column, picked by which
// half of the tile they are in.
func drawCreature(dst *core.Screen, v core.Rect, c *sim.Creature) {
	if c == nil || c.State() == sim.StateDead {
		return
	}
	b := c.Bounds()
	cx, cy := b.Center()
	ts := sim.TileSize
	tx, ty := floorDiv(cx, ts), floorDiv(cy, ts)
	if !v.Contains(tx, ty) {
		return
	}

	col := speciesColors[c.Species()]
	if c.State() == sim.StateDying {
		col = core.ColorGray
	}
	sx, sy := (tx-v.X)*cellW, ty-v.Y+hudRows
	glyph := c.Glyph()

	if c.Width()*2 < ts {
		half := (cx - tx*ts) * cellW / ts
		dst.SetColor(sx+half, sy, glyph, col)
		return
	}
	for i := 0; i < cellW; i++ {
		dst.SetColor(sx+i, sy, glyph, col)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	st := g.world.Stats()
	health := 0
	if p := g.world.Player(); p != nil && p.Health() > 0 {
		health = p.Health()
	}

	left := fmt.Sprintf(" %s  %s  Score: %d  Waves: %d ", Title, g.levelName(), g.world.Score(), st.Waves)
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	lives := strings.Repeat("▲", health)
	dst.DrawTextColor(dst.Width()-len([]rune(lives))-1, 0, lives, speciesColors[sim.SpeciesPlayer])
}

func (g *Game) drawNoMap(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColor(mid-1, "no map available", core.ColorBrightRed)
	if g.err != nil {
		dst.DrawTextCenteredColor(mid, g.err.Error(), core.ColorGray)
	}
	dst.DrawTextCenteredColor(mid+2, "Press R to retry or Q to quit", core.ColorGray)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
