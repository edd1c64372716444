package engine

import "github.com/google/uuid"

// Snapshot is a consistent copy of the observable game state. Renderers
// and input consume snapshots only; mutation goes through Machine
// operations.
type Snapshot struct {
	Level        int
	Pairs        int
	Matched      int
	Moves        int
	Seconds      int
	BestScore    int
	HasBestScore bool

	Cards     []Card
	FirstPick int

	Checking     bool
	Paused       bool
	GameOver     bool
	GameComplete bool
	TimerRunning bool

	BoardID uuid.UUID
}

// Score returns the running score for the level in progress, moves plus
// elapsed seconds. Lower is better.
func (s Snapshot) Score() int {
	return s.Moves + s.Seconds
}
