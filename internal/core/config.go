package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickInterval returns the frame duration for the tick rate.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score     int
	Kills     int
	Elapsed   time.Duration // Simulated run time
	GameOver  bool
	Paused    bool
	Upgrading bool // Waiting for an upgrade choice
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
