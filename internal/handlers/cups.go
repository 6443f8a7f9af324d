package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/beetlerank-devapi/internal/fixtures"
	"github.com/trentd187/beetlerank-devapi/internal/models"
)

// ListCups returns a handler for GET /cups. Order follows the catalog.
func ListCups(catalog *fixtures.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(models.CupsResponse{Cups: catalog.CupNames()})
	}
}

// ListMaps returns a handler for GET /maps/:cup.
func ListMaps(catalog *fixtures.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cup, err := pathParam(c, "cup")
		if err != nil {
			return err
		}
		maps, err := catalog.Maps(cup)
		if err != nil {
			return lookupError(err)
		}
		return c.JSON(models.MapsResponse{Maps: maps})
	}
}
