package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/trentd187/beetlerank-devapi/internal/fixtures"
	"github.com/trentd187/beetlerank-devapi/internal/middleware"
	"github.com/trentd187/beetlerank-devapi/internal/models"
)

// ErrorHandler returns the fiber.ErrorHandler used by the app.
//
// Every error a handler returns ends up here, as do unknown routes (404) and
// wrong methods (405). *fiber.Error values keep their status and message;
// anything else is a 500 and gets logged, with the message hidden from the client.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Interface("request_id", c.Locals(middleware.RequestIDKey)).
				Msg("request failed")
		}

		return c.Status(code).JSON(models.ErrorResponse{
			Succeed: false,
			Error:   message,
		})
	}
}

// pathParam returns the percent-decoded value of a route parameter.
// "TYRIA%20CUP" becomes "TYRIA CUP"; a malformed escape is a 400.
func pathParam(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid "+name+" parameter")
	}
	return value, nil
}

// lookupError turns a failed catalog lookup into an HTTP error.
// Misses become 404s carrying the lookup's message; anything else is passed
// through and ends up as a 500.
func lookupError(err error) error {
	if errors.Cause(err) == fixtures.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return err
}
