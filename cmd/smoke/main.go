// cmd/smoke/main.go
// Smoke test for a running BeetleRank API (the dev mock or the real service).
// It calls every endpoint the racing-timer client uses and exits non-zero if
// any of them misbehaves:
//
//	go run ./cmd/smoke -url http://localhost:3000/api/dev
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trentd187/beetlerank-devapi/internal/beetlerank"
)

func main() {
	baseURL := flag.String("url", "http://localhost:3000/api/dev", "API base URL")
	guildhall := flag.String("guildhall", "DEV", "guildhall used for the ranking checks")
	user := flag.String("user", "Test User", "user used for the ranking check")
	timeout := flag.Duration("timeout", 5*time.Second, "per-request timeout")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	client := beetlerank.NewClient(*baseURL, *timeout)
	checks := client.SmokeTest(*guildhall, *user)
	for _, ch := range checks {
		if ch.Err != nil {
			log.Error().Str("check", ch.Name).Err(ch.Err).Msg("FAIL")
			continue
		}
		log.Info().Str("check", ch.Name).Str("result", ch.Detail).Msg("ok")
	}

	if !beetlerank.Passed(checks) {
		os.Exit(1)
	}
}
