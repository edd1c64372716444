package config

import (
	"os"
	"testing"

	"github.com/nambule/audiomemorygame/constants"
)

func clearEnv() {
	os.Unsetenv("AUDIO_MEMORY_DEBUG")
	os.Unsetenv("AUDIO_MEMORY_SEED")
	os.Unsetenv("AUDIO_MEMORY_START_LEVEL")
	os.Unsetenv("AUDIO_MEMORY_LOG_LEVEL")
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Debug {
		t.Error("Expected debug disabled by default")
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected seed 0, got %d", cfg.Seed)
	}
	if cfg.StartLevel != 1 {
		t.Errorf("Expected start level 1, got %d", cfg.StartLevel)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv()

	cfg := Load()

	if cfg.Debug || cfg.Seed != 0 || cfg.StartLevel != 1 || cfg.LogLevel != "info" {
		t.Errorf("Expected default config with empty environment, got %+v", cfg)
	}
}

func TestLoadDebug(t *testing.T) {
	defer clearEnv()

	testCases := []struct {
		name     string
		value    string
		expected bool
	}{
		{"True value", "true", true},
		{"False value", "false", false},
		{"Numeric true", "1", true},
		{"Numeric false", "0", false},
		{"Invalid value", "yes please", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Setenv("AUDIO_MEMORY_DEBUG", tc.value)
			cfg := Load()
			if cfg.Debug != tc.expected {
				t.Errorf("Expected debug=%v for %q, got %v", tc.expected, tc.value, cfg.Debug)
			}
		})
	}
}

func TestLoadSeed(t *testing.T) {
	defer clearEnv()

	testCases := []struct {
		name     string
		value    string
		expected int64
	}{
		{"Positive seed", "12345", 12345},
		{"Negative seed", "-99", -99},
		{"Invalid seed", "not-a-number", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Setenv("AUDIO_MEMORY_SEED", tc.value)
			cfg := Load()
			if cfg.Seed != tc.expected {
				t.Errorf("Expected seed %d for %q, got %d", tc.expected, tc.value, cfg.Seed)
			}
		})
	}
}

func TestLoadStartLevel(t *testing.T) {
	defer clearEnv()

	testCases := []struct {
		name     string
		value    string
		expected int
	}{
		{"Valid level", "7", 7},
		{"Floor clamp", "0", 1},
		{"Negative clamp", "-5", 1},
		{"Ceiling clamp", "50", constants.MaxLevel},
		{"Last level", "31", 31},
		{"Invalid level", "abc", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Setenv("AUDIO_MEMORY_START_LEVEL", tc.value)
			cfg := Load()
			if cfg.StartLevel != tc.expected {
				t.Errorf("Expected start level %d for %q, got %d", tc.expected, tc.value, cfg.StartLevel)
			}
		})
	}
}

func TestLoadLogLevel(t *testing.T) {
	defer clearEnv()

	os.Setenv("AUDIO_MEMORY_LOG_LEVEL", "debug")
	cfg := Load()
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
}

func TestNormalizeClampsLevel(t *testing.T) {
	cfg := &Config{StartLevel: 100}
	cfg.Normalize()
	if cfg.StartLevel != constants.MaxLevel {
		t.Errorf("Expected start level clamped to %d, got %d", constants.MaxLevel, cfg.StartLevel)
	}

	cfg.StartLevel = -3
	cfg.Normalize()
	if cfg.StartLevel != 1 {
		t.Errorf("Expected start level clamped to 1, got %d", cfg.StartLevel)
	}
}

func TestEffectiveSeed(t *testing.T) {
	cfg := &Config{Seed: 42}
	if cfg.EffectiveSeed() != 42 {
		t.Errorf("Expected explicit seed 42, got %d", cfg.EffectiveSeed())
	}

	cfg.Seed = 0
	if cfg.EffectiveSeed() == 0 {
		t.Error("Expected a time-derived seed for the zero value")
	}
}
