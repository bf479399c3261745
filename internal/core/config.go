package core

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // Step calls per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 terminal at DefaultTickRate with no seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// GameState is the summary the platform reads after every tick.
type GameState struct {
	Score    int
	Lines    int // cleared rows
	Level    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState

	// Events is a short human-readable log of what happened during the
	// tick ("lock", "clear 2", "game over"). Empty on quiet ticks.
	Events []string
}
