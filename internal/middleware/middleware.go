// Package middleware contains HTTP middleware functions for the dev API.
// Middleware sits between the HTTP server and route handlers; it runs on every
// request that passes through it.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	// requestid stamps every request with an id, echoed back in X-Request-ID
	// and stored in c.Locals so the access log and error handler can print it.
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestIDKey is the c.Locals key holding the current request id.
const RequestIDKey = "requestid"

// Passthrough is the hook mounted on the API prefix. It doesn't filter, rewrite
// or log anything: it just hands the request to the next handler. Anything that
// should apply to every mock route (and not to /health) goes here.
func Passthrough() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}

// RequestID returns middleware that assigns a UUIDv4 to each request.
// An id sent by the caller in X-Request-ID is kept as-is.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: RequestIDKey,
	})
}
