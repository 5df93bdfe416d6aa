package sim

import (
	"math"

	"github.com/vovakirdan/tui-centipede/internal/core"
)

// Frame is one animation frame: the glyph drawn for it, the sprite size in
// pixels while it is shown, and how long it stays up.
type Frame struct {
	Glyph    rune
	W, H     int
	Duration float64 // ms
}

// Animation cycles through frames as time advances.
type Animation struct {
	frames  []Frame
	index   int
	elapsed float64
	total   float64
}

// NewAnimation builds a looping animation from frames.
func NewAnimation(frames ...Frame) *Animation {
	a := &Animation{frames: frames}
	for _, f := range frames {
		a.total += f.Duration
	}
	return a
}

// Clone returns an independent copy positioned at the first frame.
func (a *Animation) Clone() *Animation {
	return NewAnimation(a.frames...)
}

// Start rewinds to the first frame.
func (a *Animation) Start() {
	a.index = 0
	a.elapsed = 0
}

// Update advances the animation clock.
func (a *Animation) Update(elapsedMS float64) {
	if len(a.frames) < 2 || a.total <= 0 {
		return
	}
	a.elapsed += elapsedMS
	if a.elapsed >= a.total {
		a.elapsed = math.Mod(a.elapsed, a.total)
		a.index = 0
	}

	end := 0.0
	for i := 0; i <= a.index; i++ {
		end += a.frames[i].Duration
	}
	for a.elapsed >= end && a.index < len(a.frames)-1 {
		a.index++
		end += a.frames[a.index].Duration
	}
}

// Frame returns the current frame. An empty animation yields a zero Frame.
func (a *Animation) Frame() Frame {
	if a == nil || len(a.frames) == 0 {
		return Frame{}
	}
	return a.frames[a.index]
}

// Entity is the positional part of every sprite in the world.
// Position is in pixels, velocity in pixels per millisecond.
type Entity struct {
	X, Y   float64
	VX, VY float64
	anim   *Animation
}

// Width returns the width of the current frame in pixels.
func (e *Entity) Width() int {
	return e.anim.Frame().W
}

// Height returns the height of the current frame in pixels.
func (e *Entity) Height() int {
	return e.anim.Frame().H
}

// Glyph returns the rune of the current frame.
func (e *Entity) Glyph() rune {
	return e.anim.Frame().Glyph
}

// Animation returns the animation currently playing.
func (e *Entity) Animation() *Animation {
	return e.anim
}

// Bounds returns the sprite rectangle on whole pixels.
func (e *Entity) Bounds() core.Rect {
	return core.NewRect(roundPixel(e.X), roundPixel(e.Y), e.Width(), e.Height())
}
