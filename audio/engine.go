package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/nambule/audiomemorygame/constants"
	"github.com/nambule/audiomemorygame/status"
)

// Engine manages tone and cue playback through the system speaker
type Engine struct {
	config *AudioConfig
	mixer  *beep.Mixer

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	mu sync.RWMutex // Protects config
}

// NewEngine creates an audio engine
func NewEngine(cfg ...*AudioConfig) *Engine {
	config := DefaultAudioConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		config = cfg[0]
	}

	e := &Engine{
		config: config,
		mixer:  &beep.Mixer{},
	}
	e.muted.Store(!config.Enabled)

	return e
}

// Start initializes the speaker and begins mixing. A speaker that cannot
// be opened drops the engine into silent mode rather than failing.
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	e.mu.RLock()
	rate := beep.SampleRate(e.config.SampleRate)
	e.mu.RUnlock()

	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil // Silent mode, not an error
	}

	speaker.Play(e.mixer)
	e.running.Store(true)
	return nil
}

// Stop terminates the engine
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}

	if e.silentMode.Load() {
		return
	}

	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
}

// PlayTone sounds a card's identifying tone
func (e *Engine) PlayTone(freq float64) {
	if !e.canPlay() {
		return
	}

	e.mu.RLock()
	s := CreateCardTone(freq, e.config)
	e.mu.RUnlock()

	e.add(s)
	status.Incr("audio.tones")
}

// PlayCue sounds a game feedback cue
func (e *Engine) PlayCue(c Cue) {
	if !e.canPlay() {
		return
	}

	e.mu.RLock()
	s := CueSound(c, e.config)
	e.mu.RUnlock()

	if s == nil {
		return
	}

	e.add(s)
	status.Incr("audio.cues")
}

// PlayMatch sounds the pair-resolved cue
func (e *Engine) PlayMatch() {
	e.PlayCue(CueMatch)
}

// PlayMismatch sounds the pair-rejected cue
func (e *Engine) PlayMismatch() {
	e.PlayCue(CueMismatch)
}

// PlayLevelUp sounds the level-cleared cue
func (e *Engine) PlayLevelUp() {
	e.PlayCue(CueLevelUp)
}

// PlayGameOver sounds the flip-limit loss cue
func (e *Engine) PlayGameOver() {
	e.PlayCue(CueGameOver)
}

// add mixes in a one-shot streamer; finished streamers drain out on their own
func (e *Engine) add(s beep.Streamer) {
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

func (e *Engine) canPlay() bool {
	return e.running.Load() && !e.muted.Load() && !e.silentMode.Load()
}

// ToggleMute toggles mute state, returns true if now audible
func (e *Engine) ToggleMute() bool {
	newMute := !e.muted.Load()
	e.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsEnabled returns true if running and unmuted
func (e *Engine) IsEnabled() bool {
	return e.running.Load() && !e.muted.Load() && !e.silentMode.Load()
}

// IsRunning returns true if engine is running (even in silent mode)
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// IsSilent returns true when no speaker could be opened
func (e *Engine) IsSilent() bool {
	return e.silentMode.Load()
}

// Volume returns the current master volume
func (e *Engine) Volume() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.config.MasterVolume
}

// SetVolume updates master volume (0.0-1.0)
func (e *Engine) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}

	e.mu.Lock()
	e.config.MasterVolume = vol
	e.mu.Unlock()
}

// SetConfig replaces config
func (e *Engine) SetConfig(cfg *AudioConfig) {
	if cfg == nil {
		return
	}

	e.mu.Lock()
	e.config = cfg
	e.mu.Unlock()

	e.muted.Store(!cfg.Enabled)
}
