// cmd/server/main.go
// Entry point for the BeetleRank dev API: a mock of the leaderboard service that
// serves canned rankings, cups, maps and checkpoints for frontend development.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/trentd187/beetlerank-devapi/internal/config"
	"github.com/trentd187/beetlerank-devapi/internal/fixtures"
	"github.com/trentd187/beetlerank-devapi/internal/server"
)

func main() {
	// Start with a plain logger so configuration errors are still reported.
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	log = newLogger(cfg)

	// The catalog is the lookup table behind every mock route. It's built once
	// here and only read afterwards.
	catalog := fixtures.Default()
	if cfg.FixturesFile != "" {
		catalog, err = fixtures.Load(cfg.FixturesFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.FixturesFile).Msg("Failed to load fixtures")
		}
		log.Info().Str("file", cfg.FixturesFile).Msg("Loaded fixtures")
	}

	app := server.New(cfg, catalog, log)

	// Listen in a goroutine so main can wait for a shutdown signal.
	errc := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.Addr()).
			Str("prefix", cfg.MountPrefix).
			Msgf("Starting %s on http://%s%s", server.AppName, cfg.Addr(), cfg.MountPrefix)
		errc <- app.Listen(cfg.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		log.Fatal().Err(err).Msg("Server stopped")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("Server stopped")
}

// newLogger builds the application logger: human-readable in development, JSON otherwise.
func newLogger(cfg *config.Config) zerolog.Logger {
	base := zerolog.New(os.Stdout)
	if cfg.IsDevelopment() {
		base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}
	return base.Level(cfg.LogLevel).With().Timestamp().Str("app", server.AppName).Logger()
}
