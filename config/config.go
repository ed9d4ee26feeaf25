// @lixen: #dev{feature[settings(config,cmd)]}
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/puyo/constants"
	"github.com/lixenwraith/puyo/core"
	"github.com/lixenwraith/puyo/engine"
)

// ErrInvalid is returned when a setting is out of range or malformed
var ErrInvalid = errors.New("invalid config")

// Scoreboard drivers
const (
	DriverText   = "text"
	DriverSQLite = "sqlite"
)

// ScoreboardConfig selects where finished sessions are recorded
type ScoreboardConfig struct {
	Path   string `toml:"path"`
	Driver string `toml:"driver"`
}

// Config is the full set of user settings
// Rows and Cols of zero derive the field from the terminal size
type Config struct {
	Rows        int    `toml:"rows"`
	Cols        int    `toml:"cols"`
	Colors      int    `toml:"colors"`
	SpawnColumn int    `toml:"spawn_column"`
	Speed       Speed  `toml:"speed"`
	MaxDuration int    `toml:"max_duration"` // Seconds; zero disables the limit
	Sound       bool   `toml:"sound"`
	Debug       bool   `toml:"debug"`
	LogLevel    string `toml:"log_level"`
	HTTPAddr    string `toml:"http_addr"` // Empty disables the status server

	Scoreboard ScoreboardConfig `toml:"scoreboard"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Colors:      constants.DefaultColors,
		SpawnColumn: constants.DefaultSpawnColumn,
		Speed:       SpeedNormal,
		MaxDuration: int(constants.DurationNormal / time.Second),
		Sound:       true,
		LogLevel:    "info",
		Scoreboard: ScoreboardConfig{
			Path:   constants.DefaultScoreboardPath,
			Driver: DriverText,
		},
	}
}

// Load layers settings: defaults, then the TOML file at path, then .env files, then PUYO_* variables
// A missing config file or .env file is not an error
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Debug().Str("path", path).Msg("no config file, using defaults")
		case err != nil:
			return cfg, fmt.Errorf("%w: decode %s: %w", ErrInvalid, path, err)
		default:
			for _, key := range md.Undecoded() {
				log.Warn().Str("path", path).Str("key", key.String()).Msg("unknown config key")
			}
		}
	}

	if err := loadEnvFiles(envFiles...); err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate reports the first out-of-range setting
func (c Config) Validate() error {
	if c.Rows < 0 || c.Cols < 0 {
		return fmt.Errorf("%w: field size %dx%d is negative", ErrInvalid, c.Rows, c.Cols)
	}
	if (c.Rows > 0 && c.Rows < 2) || (c.Cols > 0 && c.Cols < 2) {
		return fmt.Errorf("%w: field size %dx%d too small", ErrInvalid, c.Rows, c.Cols)
	}
	if c.Colors < 1 || c.Colors > core.MaxColors {
		return fmt.Errorf("%w: colors %d out of range 1..%d", ErrInvalid, c.Colors, core.MaxColors)
	}
	if c.SpawnColumn < 0 {
		return fmt.Errorf("%w: spawn column %d is negative", ErrInvalid, c.SpawnColumn)
	}
	if !c.Speed.Valid() {
		return fmt.Errorf("%w: unknown speed %q", ErrInvalid, c.Speed)
	}
	if c.MaxDuration < 0 {
		return fmt.Errorf("%w: max duration %d is negative", ErrInvalid, c.MaxDuration)
	}
	switch c.Scoreboard.Driver {
	case DriverText, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown scoreboard driver %q", ErrInvalid, c.Scoreboard.Driver)
	}
	if c.Scoreboard.Path == "" {
		return fmt.Errorf("%w: empty scoreboard path", ErrInvalid)
	}
	return nil
}

// FieldSize resolves the playfield dimensions for a terminal of the given size
// One terminal cell per field cell; the HUD takes the remaining space
func (c Config) FieldSize(termRows, termCols int) (rows, cols int) {
	rows, cols = c.Rows, c.Cols
	if rows == 0 {
		rows = max(termRows/2, 2)
	}
	if cols == 0 {
		cols = max(termCols/2, 2)
	}
	return rows, cols
}

// Engine converts the settings into a simulation config for the given terminal size
func (c Config) Engine(termRows, termCols int) engine.Config {
	rows, cols := c.FieldSize(termRows, termCols)
	return engine.Config{
		Rows:        rows,
		Cols:        cols,
		Colors:      c.Colors,
		SpawnColumn: c.SpawnColumn,
		MaxDuration: time.Duration(c.MaxDuration) * time.Second,
	}
}

// Gravity returns the interval between automatic fall steps
func (c Config) Gravity() time.Duration {
	return c.Speed.Interval()
}
