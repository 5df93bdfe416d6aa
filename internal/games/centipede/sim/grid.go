// Package sim is the simulation core of the Centipede game: a frame-driven
// world that moves creatures over a static tile grid, resolves tile and
// sprite collisions, runs the creature life cycle and keeps the enemy waves
// populated. It has no terminal, audio or file dependencies.
package sim

import "math"

// Tile is an opaque reference to a solid tile. NoTile marks an empty cell.
type Tile rune

// NoTile is the value of an empty cell.
const NoTile Tile = 0

// TileSize is the pixel edge of a tile. Species frame sizes are laid out
// against it.
const TileSize = 64

// TileCoord addresses one grid cell.
type TileCoord struct {
	X, Y int
}

// TileGrid is the static tile layer of a level.
// Cells are stored in row-major order: index = y*W + x.
type TileGrid struct {
	W, H     int // Size in tiles
	TileSize int // Edge length of a tile in pixels
	tiles    []Tile
}

// NewTileGrid creates an empty grid of w*h tiles.
func NewTileGrid(w, h, tileSize int) *TileGrid {
	return &TileGrid{
		W:        w,
		H:        h,
		TileSize: tileSize,
		tiles:    make([]Tile, w*h),
	}
}

// InBounds returns true if (x, y) lies inside the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Tile returns the tile at (x, y), or NoTile outside the grid.
func (g *TileGrid) Tile(x, y int) Tile {
	if !g.InBounds(x, y) {
		return NoTile
	}
	return g.tiles[y*g.W+x]
}

// SetTile places a tile. Out-of-bounds writes are ignored.
func (g *TileGrid) SetTile(x, y int, t Tile) {
	if g.InBounds(x, y) {
		g.tiles[y*g.W+x] = t
	}
}

// Solid reports whether a creature may not enter the cell.
// Everything outside the grid counts as solid, so the world is walled in.
func (g *TileGrid) Solid(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.tiles[y*g.W+x] != NoTile
}

// PixelW returns the grid width in pixels.
func (g *TileGrid) PixelW() int {
	return g.W * g.TileSize
}

// PixelH returns the grid height in pixels.
func (g *TileGrid) PixelH() int {
	return g.H * g.TileSize
}

// PixelsToTiles converts a pixel coordinate to the tile containing it.
// The pixel is rounded first, then floor-divided so negative positions
// land in negative tiles.
func (g *TileGrid) PixelsToTiles(p float64) int {
	return floorDiv(roundPixel(p), g.TileSize)
}

// TilesToPixels returns the pixel coordinate of a tile's top/left edge.
func (g *TileGrid) TilesToPixels(t int) float64 {
	return float64(t * g.TileSize)
}

// roundPixel rounds half up, so -0.5 becomes 0 and 0.5 becomes 1.
func roundPixel(p float64) int {
	return int(math.Floor(p + 0.5))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
