package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/beetlerank-devapi/internal/fixtures"
)

// CheckpointsContentType is the media type of GET /uploads/checkpoints/.
const CheckpointsContentType = "text/csv; charset=utf-8"

// Checkpoints returns a handler for GET /uploads/checkpoints/.
// The body is plain CSV (STEP,STEPNAME,X,Y,Z) written straight into the response.
func Checkpoints(catalog *fixtures.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, CheckpointsContentType)
		return fixtures.WriteCheckpointsCSV(c, catalog.Checkpoints())
	}
}
