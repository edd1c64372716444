package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	logDir      = "logs"
	logFileName = "audiomemory.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging routes the global logger. With debug off everything is
// discarded; with debug on entries append to logs/audiomemory.log, and an
// oversized file is rotated aside under a timestamped name first.
// Returns the open log file, nil when logging is disabled or unavailable.
func setupLogging(debug bool, level string) *os.File {
	if !debug {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		log.Logger = zerolog.New(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		log.Logger = zerolog.New(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir,
			fmt.Sprintf("audiomemory-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		log.Logger = zerolog.New(io.Discard)
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(file).With().Timestamp().Logger()

	return file
}
