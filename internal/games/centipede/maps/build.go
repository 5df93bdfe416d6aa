package maps

import (
	"github.com/vovakirdan/tui-centipede/internal/games/centipede/maps/formats"
	"github.com/vovakirdan/tui-centipede/internal/games/centipede/sim"
)

// Build turns a decoded map into a level.
// Characters:
//
//	'A'-'Z' = solid tile
//	'o' = mushroom
//	'!' = spider
//	'1' = centipede segment
//	'2' = laser
//	'*' = goal, leads to the next map
//
// Anything else is empty. Short rows are padded with empty cells.
func Build(m *formats.Map, index, tileSize int) *sim.Level {
	g := sim.NewTileGrid(m.Width(), m.Height(), tileSize)
	lvl := &sim.Level{
		Name:  m.Name,
		Index: index,
		Grid:  g,
	}

	for y, row := range m.Rows {
		for x, ch := range []rune(row) {
			switch {
			case ch >= 'A' && ch <= 'Z':
				g.SetTile(x, y, sim.Tile(ch))
			case ch == 'o':
				lvl.Placements = append(lvl.Placements, sim.Placement{Species: sim.SpeciesMushroom, TileX: x, TileY: y})
			case ch == '!':
				lvl.Placements = append(lvl.Placements, sim.Placement{Species: sim.SpeciesSpider, TileX: x, TileY: y})
			case ch == '1':
				lvl.Placements = append(lvl.Placements, sim.Placement{Species: sim.SpeciesCentipede, TileX: x, TileY: y})
			case ch == '2':
				lvl.Placements = append(lvl.Placements, sim.Placement{Species: sim.SpeciesLaser, TileX: x, TileY: y})
			case ch == '*':
				lvl.Goals = append(lvl.Goals, sim.TileCoord{X: x, Y: y})
			}
		}
	}
	return lvl
}
