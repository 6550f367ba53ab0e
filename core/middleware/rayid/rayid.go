// Package rayid provides request-ID middleware for the Fiber app.
//
// Every request gets a ray ID: either the one supplied by the caller in the
// X-Ray-ID header or a freshly generated UUID. The ID is stored in the
// request locals for log correlation (see core/logger.WithRayID) and echoed
// back in the response header.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const headerName = "X-Ray-ID"

// New creates the ray-ID middleware.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(headerName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("ray_id", id)
		c.Set(headerName, id)
		return c.Next()
	}
}
