// Package server builds the dev API's route table.
//
// New wires global middleware, the error handler and every mock route into a
// *fiber.App. cmd/server only has to listen on it; tests drive the same app
// through app.Test without opening a socket.
package server

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	// cors lets a frontend served from another origin (e.g. a Vite dev server) call the mock
	"github.com/gofiber/fiber/v2/middleware/cors"
	// logger prints request details (method, path, status, duration)
	"github.com/gofiber/fiber/v2/middleware/logger"
	// recover turns a panicking handler into a 500 instead of a dropped connection
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/trentd187/beetlerank-devapi/internal/config"
	"github.com/trentd187/beetlerank-devapi/internal/fixtures"
	"github.com/trentd187/beetlerank-devapi/internal/handlers"
	"github.com/trentd187/beetlerank-devapi/internal/middleware"
)

// AppName is reported by Fiber and in the startup log.
const AppName = "BeetleRank Dev API"

// accessLogFormat is handed to the access logger; zerolog adds the timestamp.
const accessLogFormat = "${status} ${method} ${path} ${latency} id=${locals:requestid}\n"

// New returns the app serving catalog under cfg.MountPrefix.
// Access and error logs go to log.
func New(cfg *config.Config, catalog *fixtures.Catalog, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               AppName,
		ErrorHandler:          handlers.ErrorHandler(log),
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
	})

	// --- Global middleware ---
	// Order matters: recover wraps everything, the request id is assigned
	// before the access logger reads it.
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: accessLogFormat,
		Output: accessLog{log: log},
	}))
	app.Use(cors.New())

	// Liveness check, outside the mount prefix.
	app.Get("/health", handlers.HealthCheck)

	// --- Mock routes ---
	// GET {prefix}/                       {"succeed": true}
	// GET {prefix}/info                   {"succeed": true}
	// GET {prefix}/uploads/checkpoints/   checkpoints CSV
	// GET {prefix}/top3/:guildhall        {"succeed": known guildhall}
	// GET {prefix}/top3/:guildhall/:user  ranking window or 404
	// GET {prefix}/cups                   {"cups": [...]}
	// GET {prefix}/maps/:cup              {"maps": [...]} or 404
	api := app.Group(cfg.MountPrefix, middleware.Passthrough())

	api.Get("/", handlers.Succeed)
	api.Get("/info", handlers.Succeed)
	api.Get("/uploads/checkpoints/", handlers.Checkpoints(catalog))
	api.Get("/top3/:guildhall", handlers.Top3Status(catalog))
	api.Get("/top3/:guildhall/:user", handlers.UserRanking(catalog))
	api.Get("/cups", handlers.ListCups(catalog))
	api.Get("/maps/:cup", handlers.ListMaps(catalog))

	return app
}

// accessLog feeds Fiber's access logger into zerolog at info level, so the
// access log is silenced along with everything else when LOG_LEVEL is above info.
type accessLog struct {
	log zerolog.Logger
}

func (w accessLog) Write(p []byte) (int, error) {
	w.log.Info().Msg(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}
