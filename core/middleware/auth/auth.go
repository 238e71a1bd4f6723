package auth

import (
	"strconv"

	"athlete-dashboard/core/apierror"

	"github.com/gofiber/fiber/v2"
)

const (
	// UserHeader identifies the calling user.
	UserHeader = "X-WP-User"
	// NonceHeader carries the nonce issued to that user.
	NonceHeader = "X-WP-Nonce"
	// BootstrapHeader carries the secret shared with the page host.
	BootstrapHeader = "X-Dashboard-Bootstrap"
)

// New rejects requests without a user (401) or with a nonce that does not
// belong to that user (403). On success it stores "user_id" (uint) and "nonce"
// in the request locals.
func New(nonces *Nonces) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(UserHeader)
		if raw == "" {
			return apierror.Unauthorized("You are not currently logged in.")
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return apierror.Unauthorized("You are not currently logged in.")
		}

		nonce := c.Get(NonceHeader)
		if !nonces.Verify(uint(id), nonce) {
			return apierror.New(fiber.StatusForbidden, "rest_cookie_invalid_nonce", "Cookie check failed")
		}

		c.Locals("user_id", uint(id))
		c.Locals("nonce", nonce)
		return c.Next()
	}
}

// UserID returns the authenticated user, or zero outside Auth.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

// Nonce returns the verified nonce of the request.
func Nonce(c *fiber.Ctx) string {
	n, _ := c.Locals("nonce").(string)
	return n
}
