package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second (default 30)
	Seed     int64 // RNG seed, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has halted
	Paused   bool   // Whether the game is paused
	Level    string // Name of the loaded level, if any
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Ended is set when a run finished during this step (player death reset).
	Ended *RunSummary
}

// RunSummary describes a finished run for persistence.
type RunSummary struct {
	Level      string
	Score      int
	Waves      int
	Deaths     int
	DurationMS float64
}
