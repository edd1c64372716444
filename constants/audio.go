package constants

import "time"

// Audio Engine
const (
	// DefaultSampleRate is the synthesis and playback sample rate
	DefaultSampleRate = 44100

	// SpeakerBufferDuration sizes the speaker buffer (latency/underrun tradeoff)
	SpeakerBufferDuration = 100 * time.Millisecond

	// DefaultVolume is the master volume percentage used when unconfigured
	DefaultVolume = 70
)

// Card Tone Envelope
const (
	// ToneDuration is the total length of a card tone
	ToneDuration = 1200 * time.Millisecond

	// ToneAttack is the linear ramp-in that removes the onset click
	ToneAttack = 15 * time.Millisecond

	// ToneDecayRate is the exponential decay constant k in exp(-k*t)
	ToneDecayRate = 4.0
)

// Feedback Cue Timing
const (
	MatchCueNoteDuration    = 140 * time.Millisecond
	MismatchCueDuration     = 250 * time.Millisecond
	LevelUpCueNoteDuration  = 110 * time.Millisecond
	GameOverCueNoteDuration = 220 * time.Millisecond

	// CueAttack and CueRelease shape every feedback cue note
	CueAttack  = 10 * time.Millisecond
	CueRelease = 40 * time.Millisecond
)
