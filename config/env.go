package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "PUYO_"

// loadEnvFiles reads KEY=VALUE files into the process environment without overriding set variables
func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		err := godotenv.Load(f)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fmt.Errorf("load env file %s: %w", f, err)
	}
	return nil
}

// applyEnv overlays PUYO_* variables onto cfg
func applyEnv(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"ROWS", &cfg.Rows},
		{"COLS", &cfg.Cols},
		{"COLORS", &cfg.Colors},
		{"SPAWN_COLUMN", &cfg.SpawnColumn},
		{"MAX_DURATION", &cfg.MaxDuration},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalid, EnvPrefix, e.key, v, err)
		}
		*e.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"SOUND", &cfg.Sound},
		{"DEBUG", &cfg.Debug},
	}
	for _, e := range bools {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalid, EnvPrefix, e.key, v, err)
		}
		*e.dst = b
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"LOG_LEVEL", &cfg.LogLevel},
		{"HTTP_ADDR", &cfg.HTTPAddr},
		{"SCOREBOARD_PATH", &cfg.Scoreboard.Path},
		{"SCOREBOARD_DRIVER", &cfg.Scoreboard.Driver},
	}
	for _, e := range strs {
		if v, ok := lookup(e.key); ok {
			*e.dst = v
		}
	}

	if v, ok := lookup("SPEED"); ok {
		cfg.Speed = Speed(v)
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
