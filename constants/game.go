package constants

import "time"

// Board Shape
const (
	// MaxPairs caps board growth at an 8x8 deal of 64 cards
	MaxPairs = 32

	// MaxLevel is the last level; boards stop growing once the pair cap is reached
	MaxLevel = 31

	// MaxFlips is the per-card reveal allowance; the flip that reaches it
	// loses the game when its comparison round resolves
	MaxFlips = 5

	// CardCellWidth and CardCellHeight size one card's terminal footprint
	CardCellWidth  = 7
	CardCellHeight = 3
)

// Round Timing
const (
	// ResolveDelay is how long a completed comparison round stays face-up
	// before match/mismatch resolution applies
	ResolveDelay = 900 * time.Millisecond

	// AdvanceDelay is the pause on a cleared board before the next level deals
	AdvanceDelay = 1200 * time.Millisecond

	// SettleDelay separates dealing a board from starting its timer
	SettleDelay = 400 * time.Millisecond

	// TickInterval is the stopwatch granularity
	TickInterval = time.Second
)
