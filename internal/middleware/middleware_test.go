package middleware_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentd187/beetlerank-devapi/internal/middleware"
)

func TestPassthrough_ContinuesToHandler(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.Passthrough())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("reached")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/?x=1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "reached", string(body))
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		id, _ := c.Locals(middleware.RequestIDKey).(string)
		return c.SendString(id)
	})

	t.Run("it generates a uuid when none is sent", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		id := resp.Header.Get(fiber.HeaderXRequestID)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("it keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set(fiber.HeaderXRequestID, "frontend-42")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "frontend-42", resp.Header.Get(fiber.HeaderXRequestID))
	})
}
