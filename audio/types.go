package audio

import "errors"

// ErrNoSpeaker reports that no audio device could be opened; the engine
// keeps running in silent mode when it occurs
var ErrNoSpeaker = errors.New("no audio device available")

// Cue represents the game feedback sounds
type Cue int

const (
	CueMatch    Cue = iota // Pair resolved
	CueMismatch            // Pair rejected
	CueLevelUp             // Level cleared
	CueGameOver            // Flip limit loss
	cueCount
)
