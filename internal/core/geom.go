// Package core provides the types shared by the game and the terminal
// platform: geometry, the screen buffer, input frames and run results.
package core

// Rect is an axis-aligned box on whole pixels or tiles. Its right and
// bottom edges are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the box at (x, y) of size w by h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the box.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the box.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the boxes share at least one cell.
// Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle of r, rounded toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp limits val to [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF is Clamp for float64.
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
