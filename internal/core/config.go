package core

// RuntimeConfig is what the platform hands the game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // steps per second; pacing in the game scales with it
	Seed     int64 // session seed; stage courses derive from it
}

// DefaultConfig is an 80x24 terminal at 60 steps per second.
// A zero Seed tells the platform to pick one from the clock.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is read by the platform after each step.
type GameState struct {
	Score    int  // highest stage cleared this session
	GameOver bool // a death result is on screen
	Paused   bool
}

// StepResult is what Step returns.
type StepResult struct {
	State GameState
}
