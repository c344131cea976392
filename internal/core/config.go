package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second; one tick moves the snake one cell
	Seed     int64 // RNG seed for deterministic apple placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Apples eaten this session; survives collision resets
	Length int  // Current snake length
	Best   int  // Longest snake this session
	Paused bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events of the tick.
type StepResult struct {
	State    GameState
	Ate      bool // An apple was consumed this tick
	Collided bool // The snake ran into itself and reset this tick
}
