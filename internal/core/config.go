package core

import "time"

// RuntimeConfig is what the host passes to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed; 0 asks the host to pick one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickInterval returns the nominal time between ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the summary a game reports back to the host after each step.
type GameState struct {
	Score    int  // Current score, truncated
	InMenu   bool // Waiting on the title screen
	GameOver bool // Run has ended
	Paused   bool // Run is paused
}

// Event is something noteworthy that happened during a step, for the host
// to log.
type Event struct {
	Kind    string
	Message string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
