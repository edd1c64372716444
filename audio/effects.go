package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/nambule/audiomemorygame/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// decayEnvelope applies a linear attack followed by an exponential decay,
// giving card tones a plucked, bell-like character
type decayEnvelope struct {
	streamer      beep.Streamer
	rate          beep.SampleRate
	position      int
	attackSamples int
	totalSamples  int
	decayRate     float64
}

// NewDecayEnvelope creates a pluck-style envelope with decay constant k in exp(-k*t)
func NewDecayEnvelope(s beep.Streamer, duration, attack time.Duration, decayRate float64, rate beep.SampleRate) beep.Streamer {
	return &decayEnvelope{
		streamer:      s,
		rate:          rate,
		attackSamples: rate.N(attack),
		totalSamples:  rate.N(duration),
		decayRate:     decayRate,
	}
}

func (d *decayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if d.position >= d.totalSamples {
			return i, false
		}

		t := float64(d.position) / float64(d.rate)
		vol := math.Exp(-d.decayRate * t)
		if d.attackSamples > 0 && d.position < d.attackSamples {
			vol *= float64(d.position) / float64(d.attackSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}

	return n, ok
}

func (d *decayEnvelope) Err() error { return d.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateCardTone generates a card's identifying tone at the given frequency
func CreateCardTone(freq float64, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(freq, constants.ToneDuration, WaveSine, rate)
	shaped := NewDecayEnvelope(osc, constants.ToneDuration, constants.ToneAttack, constants.ToneDecayRate, rate)

	return newVolume(shaped, cfg.MasterVolume)
}

// CreateMatchSound generates a rising two-note chime for a resolved pair
func CreateMatchSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (E5)
	n1 := NewOscillator(659.26, constants.MatchCueNoteDuration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, constants.MatchCueNoteDuration, constants.CueAttack, constants.CueRelease, rate)

	// Second note (A5)
	n2 := NewOscillator(880.0, constants.MatchCueNoteDuration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constants.MatchCueNoteDuration, constants.CueAttack, constants.CueRelease, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	vol := cfg.CueVolumes[CueMatch] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// CreateMismatchSound generates a short low buzz for a rejected pair
func CreateMismatchSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(110.0, constants.MismatchCueDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.MismatchCueDuration, constants.CueAttack, constants.CueRelease, rate)

	vol := cfg.CueVolumes[CueMismatch] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateLevelUpSound generates an ascending arpeggio for a cleared level
func CreateLevelUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// C5, E5, G5
	notes := []float64{523.25, 659.26, 783.99}
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := NewOscillator(freq, constants.LevelUpCueNoteDuration, WaveSquare, rate)
		streamers = append(streamers, NewEnvelope(osc, constants.LevelUpCueNoteDuration, constants.CueAttack, constants.CueRelease, rate))
	}

	sequence := beep.Seq(streamers...)

	vol := cfg.CueVolumes[CueLevelUp] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// CreateGameOverSound generates a descending figure for the flip limit loss
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// G4, Eb4, C4
	notes := []float64{392.00, 311.13, 261.63}
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := NewOscillator(freq, constants.GameOverCueNoteDuration, WaveSaw, rate)
		streamers = append(streamers, NewEnvelope(osc, constants.GameOverCueNoteDuration, constants.CueAttack, constants.CueRelease, rate))
	}

	sequence := beep.Seq(streamers...)

	vol := cfg.CueVolumes[CueGameOver] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// CueSound returns the appropriate streamer for the given cue
func CueSound(c Cue, cfg *AudioConfig) beep.Streamer {
	switch c {
	case CueMatch:
		return CreateMatchSound(cfg)
	case CueMismatch:
		return CreateMismatchSound(cfg)
	case CueLevelUp:
		return CreateLevelUpSound(cfg)
	case CueGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
