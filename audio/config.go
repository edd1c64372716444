package audio

import (
	"encoding/json"
	"math"
	"os"
	"strconv"

	"github.com/nambule/audiomemorygame/constants"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	CueVolumes   map[Cue]float64
	SampleRate   int
}

// DefaultAudioConfig returns the baseline configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: float64(constants.DefaultVolume) / 100.0,
		CueVolumes: map[Cue]float64{
			CueMatch:    0.8,
			CueMismatch: 0.7,
			CueLevelUp:  0.9,
			CueGameOver: 0.8,
		},
		SampleRate: constants.DefaultSampleRate,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	// Check if audio is enabled
	if enabled := os.Getenv("AUDIO_MEMORY_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("AUDIO_MEMORY_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	// Load cue volumes from JSON
	if cueVols := os.Getenv("AUDIO_MEMORY_SFX_VOLUMES"); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			// Map string keys to Cue
			if v, ok := volumes["match"]; ok {
				cfg.CueVolumes[CueMatch] = v
			}
			if v, ok := volumes["mismatch"]; ok {
				cfg.CueVolumes[CueMismatch] = v
			}
			if v, ok := volumes["levelup"]; ok {
				cfg.CueVolumes[CueLevelUp] = v
			}
			if v, ok := volumes["gameover"]; ok {
				cfg.CueVolumes[CueGameOver] = v
			}
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv("AUDIO_MEMORY_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// SaveAudioConfig writes the configuration back to environment variables
func SaveAudioConfig(cfg *AudioConfig) error {
	if err := os.Setenv("AUDIO_MEMORY_AUDIO_ENABLED", strconv.FormatBool(cfg.Enabled)); err != nil {
		return err
	}

	volume := strconv.Itoa(int(math.Round(cfg.MasterVolume * 100)))
	if err := os.Setenv("AUDIO_MEMORY_MASTER_VOLUME", volume); err != nil {
		return err
	}

	volumes := map[string]float64{
		"match":    cfg.CueVolumes[CueMatch],
		"mismatch": cfg.CueVolumes[CueMismatch],
		"levelup":  cfg.CueVolumes[CueLevelUp],
		"gameover": cfg.CueVolumes[CueGameOver],
	}
	data, err := json.Marshal(volumes)
	if err != nil {
		return err
	}
	if err := os.Setenv("AUDIO_MEMORY_SFX_VOLUMES", string(data)); err != nil {
		return err
	}

	return os.Setenv("AUDIO_MEMORY_SAMPLE_RATE", strconv.Itoa(cfg.SampleRate))
}
