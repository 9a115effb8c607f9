package core

// RuntimeConfig is passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second
	Seed     int64  // RNG seed; 0 lets the platform pick one
	Profile  string // Player profile, selects the save slot
}

// DefaultProfile is the save slot used when no player is named.
const DefaultProfile = "local"

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
		Profile:  DefaultProfile,
	}
}

// GameState is what a game reports to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score known to the game
	Won      bool // Target reached; the game waits for continue or restart
	GameOver bool // No moves left
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   GameState
	Changed bool // The game state changed and may need saving
}
