package core

import "time"

// RuntimeConfig is what the platform hands to a game session.
type RuntimeConfig struct {
	ScreenW      int           // Terminal width in cells
	ScreenH      int           // Terminal height in cells
	TickInterval time.Duration // Fixed simulation step
	Seed         int64         // RNG seed, 0 means pick from the clock
}

// DefaultRuntimeConfig returns an 80x24 terminal at the reference 20ms tick.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 20 * time.Millisecond,
	}
}

// GameState is the externally visible status of a run.
type GameState struct {
	Score    int
	GameOver bool
}
