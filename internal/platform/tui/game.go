package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-centipede/internal/core"
)

// Game is what the platform drives. Games contain pure logic with no Bubble
// Tea dependency; the platform handles input mapping, timing and display.
type Game interface {
	// ID is the identifier used for storage and file names.
	ID() string

	// Title is the human-readable name.
	Title() string

	// Reset builds a fresh session. Called once before the first tick.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by the wall time elapsed since the
	// previous tick.
	Step(in core.InputFrame, elapsed time.Duration) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score and status.
	State() core.GameState

	// Finish summarizes the run in progress when the player quits,
	// or returns nil if there is nothing worth recording.
	Finish() *core.RunSummary
}

// GameFactory creates one game per session, logging through logger.
type GameFactory func(logger *log.Logger) Game
