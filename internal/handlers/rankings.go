package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/beetlerank-devapi/internal/fixtures"
	"github.com/trentd187/beetlerank-devapi/internal/models"
)

// Top3Status returns a handler for GET /top3/:guildhall.
//
// This route reports an unknown guildhall as 200 {"succeed": false} rather
// than a 404: clients use it as a yes/no check and only read the flag.
func Top3Status(catalog *fixtures.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		guildhall, err := pathParam(c, "guildhall")
		if err != nil {
			return err
		}
		return c.JSON(models.StatusResponse{Succeed: catalog.Guildhall(guildhall) == nil})
	}
}

// UserRanking returns a handler for GET /top3/:guildhall/:user.
// It answers with the top entries plus the window around the user, or a 404
// when the (guildhall, user) pair isn't in the catalog.
func UserRanking(catalog *fixtures.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		guildhall, err := pathParam(c, "guildhall")
		if err != nil {
			return err
		}
		user, err := pathParam(c, "user")
		if err != nil {
			return err
		}

		ranking, err := catalog.Ranking(guildhall, user)
		if err != nil {
			return lookupError(err)
		}
		return c.JSON(ranking)
	}
}
