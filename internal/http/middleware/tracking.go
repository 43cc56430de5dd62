package middleware

import (
	"github.com/gofiber/fiber/v2"

	"magicvilla/internal/repository"
)

// Tracking opens a change-tracking scope for the lifetime of one request.
// Tracked repository reads made by the handler share it.
func Tracking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.SetUserContext(repository.WithTracking(c.UserContext()))
		return c.Next()
	}
}
