package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/nambule/audiomemorygame/constants"
)

// Config carries the game launch settings
type Config struct {
	Debug      bool   // Enable file logging and the counter row
	Seed       int64  // Board shuffle seed, 0 means time-derived
	StartLevel int    // First level to deal
	LogLevel   string // Minimum level for file logging
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Debug:      false,
		Seed:       0,
		StartLevel: 1,
		LogLevel:   "info",
	}
}

// Load reads configuration from environment variables, honoring a .env
// file in the working directory when present. Missing or malformed
// values silently keep their defaults.
func Load() *Config {
	_ = godotenv.Load()

	cfg := Default()

	if debug := os.Getenv("AUDIO_MEMORY_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug = val
		}
	}

	if seed := os.Getenv("AUDIO_MEMORY_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	if level := os.Getenv("AUDIO_MEMORY_START_LEVEL"); level != "" {
		if val, err := strconv.Atoi(level); err == nil {
			cfg.StartLevel = val
		}
	}

	if lvl := os.Getenv("AUDIO_MEMORY_LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}

	cfg.Normalize()
	return cfg
}

// Normalize clamps out-of-range values into the playable window
func (c *Config) Normalize() {
	if c.StartLevel < 1 {
		c.StartLevel = 1
	}
	if c.StartLevel > constants.MaxLevel {
		c.StartLevel = constants.MaxLevel
	}
}

// EffectiveSeed resolves the shuffle seed; zero draws one from the clock
func (c *Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
