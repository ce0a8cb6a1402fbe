package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Presentation frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Score    int    // Food eaten by the local player
	Length   int    // Segments in the local player's chain
	Ticks    uint64 // Logical ticks simulated so far
	Phase    string // "playing", "paused" or "lost"
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each presentation frame.
type StepResult struct {
	State GameState
	Ticks int // Logical ticks executed during this frame
}
