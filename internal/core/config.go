package core

// RuntimeConfig is what the platform tells a game when it starts.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Steps per second
	Seed     int64 // 0 leaves the choice to the game's configuration
}

// DefaultConfig returns the size of a classic terminal at 60 steps per
// second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is a game's status as the platform sees it.
type GameState struct {
	Score    int
	Level    int  // 0 outside gameplay
	GameOver bool // the platform may close the game
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
