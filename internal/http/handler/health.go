package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"magicvilla/internal/database"
	"magicvilla/internal/envelope"
)

// HealthCheck reports healthy only when the database answers a ping.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx, db); err != nil {
			return writeEnvelope(c, envelope.Fail(fiber.StatusServiceUnavailable, "dependency unavailable"))
		}
		return writeEnvelope(c, envelope.OK(fiber.StatusOK, fiber.Map{"status": "healthy"}))
	}
}

// LivenessProbe answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
