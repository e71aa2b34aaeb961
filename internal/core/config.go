package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int           // Current score
	Elapsed time.Duration // Wall-clock time since the session started
	Running bool          // Whether ticks are still being processed
	Won     bool          // Whether the session ended in a win
}

// StepResult is returned by Game.Step() after each simulation tick.
// Continue tells the host whether to schedule another tick.
type StepResult struct {
	State    GameState
	Continue bool
}
