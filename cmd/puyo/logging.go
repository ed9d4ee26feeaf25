package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/puyo/constants"
)

const (
	logDir      = constants.LogDir
	logFileName = constants.LogFileName
	maxLogSize  = constants.MaxLogSize
)

// setupLogging routes all logging to logs/puyo.log when debug is set and discards it otherwise
// The terminal owns stdout and stderr while the game runs
// The previous log is renamed with a timestamp once it grows past maxLogSize
func setupLogging(debug bool, level string) (zerolog.Logger, *os.File) {
	if !debug {
		logger := zerolog.Nop()
		log.Logger = logger
		return logger, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger := zerolog.Nop()
		log.Logger = logger
		return logger, nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("puyo_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger := zerolog.Nop()
		log.Logger = logger
		return logger, nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}

	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	log.Logger = logger
	logger.Info().Str("level", lvl.String()).Msg("logging started")
	return logger, f
}
