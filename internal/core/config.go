package core

import "math"

// DefaultTickRate is used when a host leaves TickRate unset.
const DefaultTickRate = 60

// RuntimeConfig is what a host tells the game about the run: the viewport
// size, the frame rate and the RNG seed.
type RuntimeConfig struct {
	ScreenW, ScreenH int // cells in the terminal, pixels in the window
	TickRate         int
	Seed             int64 // 0 lets the command pick a time-based seed
}

// Rate returns TickRate, or DefaultTickRate when unset.
func (c RuntimeConfig) Rate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// SecondsToTicks rounds a duration to whole ticks, at least one.
func (c RuntimeConfig) SecondsToTicks(seconds float64) int {
	return max(int(math.Round(seconds*float64(c.Rate()))), 1)
}
