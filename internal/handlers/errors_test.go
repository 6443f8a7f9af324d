package handlers_test

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/trentd187/beetlerank-devapi/internal/handlers"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantLogged  bool
	}{
		{
			"it keeps the status of a fiber error",
			fiber.NewError(fiber.StatusNotFound, `user "x": not found`),
			fiber.StatusNotFound,
			`user "x": not found`,
			false,
		},
		{
			"it unwraps a wrapped fiber error",
			errors.Wrap(fiber.ErrBadRequest, "context"),
			fiber.StatusBadRequest,
			"Bad Request",
			false,
		},
		{
			"it hides and logs unexpected errors",
			errors.New("disk on fire"),
			fiber.StatusInternalServerError,
			"internal server error",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(zerolog.New(&logs))})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.False(t, gjson.GetBytes(body, "succeed").Bool())
			assert.Equal(t, tt.wantMessage, gjson.GetBytes(body, "error").String())
			if tt.wantLogged {
				assert.Contains(t, logs.String(), "disk on fire")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}
