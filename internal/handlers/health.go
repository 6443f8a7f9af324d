// Package handlers contains the HTTP route handler functions for the dev API.
// Each handler corresponds to one endpoint and writes exactly one response:
// a body on success, or an error (*fiber.Error) that the app's ErrorHandler
// renders as a JSON envelope with the right status code.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/beetlerank-devapi/internal/models"
)

// HealthCheck handles GET /health.
// It lives outside the mount prefix so container health checks don't depend on MOUNT_PREFIX.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Succeed handles GET / and GET /info under the mount prefix.
// The racing-timer client calls /info on startup as its "is the API up" check
// and only looks at the succeed flag.
func Succeed(c *fiber.Ctx) error {
	return c.JSON(models.StatusResponse{Succeed: true})
}
