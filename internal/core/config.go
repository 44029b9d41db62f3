package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Animation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing status of a running game.
type GameState struct {
	Turn     int  // Current turn number
	Score    int  // Score of the finished run, 0 while playing
	GameOver bool // Whether the game has ended; further actions are ignored
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState

	// Messages emitted by a turn applied during this tick, in order.
	Messages []string
}
