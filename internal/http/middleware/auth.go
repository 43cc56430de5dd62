package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"magicvilla/internal/envelope"
)

// BearerAuth requires "Authorization: Bearer <token>" on every request that
// can change state. Reads stay open. An empty token disables the check.
func BearerAuth(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token == "" {
			return c.Next()
		}
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		got, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(envelope.Fail(fiber.StatusUnauthorized, "missing or invalid bearer token"))
		}
		return c.Next()
	}
}
