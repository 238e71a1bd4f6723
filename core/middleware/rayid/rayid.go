package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RayIDHeader carries the request identifier in both directions.
const RayIDHeader = "X-Ray-ID"

// New assigns every request an identifier, honouring one supplied by a proxy.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(RayIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(RayIDHeader, rid)
		return c.Next()
	}
}
