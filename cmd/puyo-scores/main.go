// @lixen: #dev{feature[scoreboard(scoreboard,httpapi,cmd)]}
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/puyo/config"
	"github.com/lixenwraith/puyo/httpapi"
	"github.com/lixenwraith/puyo/scoreboard"
)

var configPath = flag.String("config", "puyo.toml", "Path to TOML config file")

// Serves the scoreboard without the game; useful next to a shared SQLite file
func main() {
	flag.Parse()

	// .env is read by config.Load, so LOG_LEVEL and PORT may come from there too
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", cfg.LogLevel)); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	store, err := scoreboard.Open(cfg.Scoreboard.Driver, cfg.Scoreboard.Path, scoreboard.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open scoreboard")
	}
	defer store.Close()

	addr := cfg.HTTPAddr
	if addr == "" {
		addr = ":" + getEnv("PORT", "8080")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpapi.New(nil, store, log.Logger)
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().
		Str("addr", addr).
		Str("driver", cfg.Scoreboard.Driver).
		Str("path", cfg.Scoreboard.Path).
		Msg("starting puyo-scores")
	if err := srv.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
