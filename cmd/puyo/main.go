// @lixen: #dev{feature[settings(config,cmd)],feature[audio(audio,cmd)],feature[scoreboard(scoreboard,httpapi,cmd)]}
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/puyo/audio"
	"github.com/lixenwraith/puyo/config"
	"github.com/lixenwraith/puyo/engine"
	"github.com/lixenwraith/puyo/httpapi"
	"github.com/lixenwraith/puyo/render"
	"github.com/lixenwraith/puyo/scoreboard"
	"github.com/lixenwraith/puyo/status"
)

var (
	configPath = flag.String("config", "puyo.toml", "Path to TOML config file")
	rowsFlag   = flag.Int("rows", 0, "Field rows (0 = half the terminal height)")
	colsFlag   = flag.Int("cols", 0, "Field columns (0 = half the terminal width)")
	colorsFlag = flag.Int("colors", 4, "Number of Puyo colors (4 or 5)")
	speedFlag  = flag.String("speed", "normal", "Falling speed: slow, normal, fast")
	limitFlag  = flag.Int("duration", 600, "Max game duration in seconds (0 = unlimited)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/puyo.log")
	httpFlag   = flag.String("http", "", "Serve status and scores on this address, e.g. :8080")
	muteFlag   = flag.Bool("nosound", false, "Disable sound effects")
)

// applyFlags overrides cfg with the flags given on the command line only
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rowsFlag
		case "cols":
			cfg.Cols = *colsFlag
		case "colors":
			cfg.Colors = *colorsFlag
		case "speed":
			cfg.Speed = config.Speed(*speedFlag)
		case "duration":
			cfg.MaxDuration = *limitFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "http":
			cfg.HTTPAddr = *httpFlag
		case "nosound":
			cfg.Sound = !*muteFlag
		}
	})
}

// crash restores the terminal and prints the panic with its stack trace
func crash(screen tcell.Screen, title string, r any) {
	screen.Fini()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", title, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := setupLogging(cfg.Debug, cfg.LogLevel)
	if logFile != nil {
		defer logFile.Close()
	}

	store, err := scoreboard.Open(cfg.Scoreboard.Driver, cfg.Scoreboard.Path, scoreboard.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open scoreboard: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			crash(screen, "PUYO CRASHED", r)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbText))
	screen.Clear()

	// Audio is optional; the game runs silently without a device
	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Sound
	sounds := audio.NewSoundManager(audioCfg, logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	defer sounds.Cleanup()

	reg := status.NewRegistry()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	w, h := screen.Size()
	game := engine.NewGame(cfg.Engine(h, w), rng,
		engine.WithLogger(logger),
		engine.WithRegistry(reg),
	)

	if cfg.HTTPAddr != "" {
		srv := httpapi.New(reg, store, logger)
		go func() {
			if err := srv.Start(cfg.HTTPAddr); err != nil {
				logger.Error().Err(err).Str("addr", cfg.HTTPAddr).Msg("http server stopped")
			}
		}()
		defer srv.Shutdown(context.Background())
	}

	logger.Info().
		Str("speed", string(cfg.Speed)).
		Int("colors", cfg.Colors).
		Int("max_duration", cfg.MaxDuration).
		Str("scoreboard", cfg.Scoreboard.Path).
		Msg("puyo starting")

	newApp(screen, cfg, game, store, sounds, logger).run()
}
