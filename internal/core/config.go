package core

import "time"

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Rate returns the platform tick rate, 60 when unset.
func (c RuntimeConfig) Rate() int {
	if c.TickRate <= 0 {
		return DefaultConfig().TickRate
	}
	return c.TickRate
}

// TickDuration returns the wall-clock length of one platform tick. It is
// truncated to the nanosecond; callers that add it up should scale by Rate
// instead.
func (c RuntimeConfig) TickDuration() time.Duration {
	return time.Second / time.Duration(c.Rate())
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	Level    int
	Lines    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each platform tick.
type StepResult struct {
	State  GameState
	Events []Event // Things that happened during this tick, in order
}
