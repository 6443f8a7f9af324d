// Package config handles loading and validating runtime configuration for the dev API.
// Values are read from environment variables rather than being hardcoded, so the
// same binary can serve a frontend on a laptop or inside a container. Every
// setting has a default that matches what the frontend and the racing-timer
// client expect out of the box: http://localhost:3000/api/dev.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	// Handy in development; in a container the real environment is used instead.
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Defaults used when the matching environment variable is unset.
const (
	DefaultHost            = "localhost"
	DefaultPort            = "3000"
	DefaultMountPrefix     = "/api/dev"
	DefaultEnv             = "development"
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 5 * time.Second
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Host            string        // Interface to bind (e.g. "localhost", "0.0.0.0")
	Port            string        // TCP port the HTTP server listens on (e.g. "3000")
	MountPrefix     string        // Path every route is mounted under; always starts with "/" and never ends with one
	FixturesFile    string        // Optional YAML file replacing the built-in canned data
	Env             string        // "development" gets pretty console logs; anything else logs JSON
	LogLevel        zerolog.Level // Minimum level for application logs
	ShutdownTimeout time.Duration // How long in-flight requests get to finish on SIGINT/SIGTERM
	ReadTimeout     time.Duration // Per-connection read deadline
	WriteTimeout    time.Duration // Per-connection write deadline
}

// Addr is the host:port pair passed to the listener.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// IsDevelopment reports whether the server runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == DefaultEnv
}

// Load reads configuration from environment variables and returns a populated Config.
// It first tries to load a .env file for local development; a missing .env is fine.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any environment lookup function.
// Tests pass a map-backed lookup instead of touching the process environment.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Host:         get("HOST", DefaultHost),
		Port:         get("PORT", DefaultPort),
		MountPrefix:  NormalizePrefix(get("MOUNT_PREFIX", DefaultMountPrefix)),
		FixturesFile: get("FIXTURES_FILE", ""),
		Env:          get("ENV", DefaultEnv),
	}

	if n, err := strconv.Atoi(cfg.Port); err != nil || n < 0 || n > 65535 {
		return nil, errors.Errorf("PORT must be a number between 0 and 65535, got %q", cfg.Port)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(get("LOG_LEVEL", DefaultLogLevel)))
	if err != nil {
		return nil, errors.Wrap(err, "LOG_LEVEL")
	}
	cfg.LogLevel = level

	// Durations use Go syntax: "500ms", "5s", "1m".
	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"SHUTDOWN_TIMEOUT", DefaultShutdownTimeout, &cfg.ShutdownTimeout},
		{"READ_TIMEOUT", DefaultReadTimeout, &cfg.ReadTimeout},
		{"WRITE_TIMEOUT", DefaultWriteTimeout, &cfg.WriteTimeout},
	}
	for _, d := range durations {
		v, ok := lookup(d.key)
		if !ok || v == "" {
			*d.dst = d.def
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrap(err, d.key)
		}
		if parsed <= 0 {
			return nil, errors.Errorf("%s must be positive, got %s", d.key, v)
		}
		*d.dst = parsed
	}

	return cfg, nil
}

// NormalizePrefix makes sure a mount prefix starts with a slash and doesn't end
// with one. "" and "/" both mean "mount at the root" and normalise to "".
func NormalizePrefix(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
