package core

// defaultTickRate is the simulation rate when none is configured.
const defaultTickRate = 60

// RuntimeConfig is what the platform tells a game when a run starts. The
// screen size only matters for drawing: physics run in world pixels.
type RuntimeConfig struct {
	ScreenW, ScreenH int   // terminal cells
	TickRate         int   // steps per second
	Seed             int64 // 0 lets the platform pick one from the clock
}

// DefaultConfig is an 80x24 terminal at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: defaultTickRate}
}

// TickMillis is the length of one step in milliseconds. Timers in the
// games count down by this amount each step.
func (c RuntimeConfig) TickMillis() int {
	rate := c.TickRate
	if rate <= 0 {
		rate = defaultTickRate
	}
	return 1000 / rate
}

// GameState is the part of a game the platform acts on: it saves the score
// once GameOver turns true and stops the clock while Paused.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by every simulation step.
type StepResult struct {
	State GameState
}
