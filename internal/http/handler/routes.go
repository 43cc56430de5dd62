package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"magicvilla/internal/http/middleware"
	"magicvilla/internal/service"
)

// RegisterRoutes attaches the API routes. Everything under /api runs in its
// own tracking scope; writes need the bearer token when apiToken is set.
func RegisterRoutes(app *fiber.App, db *sql.DB, villas service.VillaService, numbers service.VillaNumberService, apiToken string) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api", middleware.Tracking(), middleware.BearerAuth(apiToken))

	v := api.Group("/VillaApi")
	v.Get("/", ListVillas(villas))
	v.Get("/:id", GetVilla(villas))
	v.Post("/", CreateVilla(villas))
	v.Put("/:id", UpdateVilla(villas))
	v.Patch("/:id", PatchVilla(villas))
	v.Delete("/:id", DeleteVilla(villas))
	v.Post("/:id/image", UploadVillaImage(villas))
	v.Get("/:id/image", VillaImage(villas))

	n := api.Group("/VillaNumberApi")
	n.Get("/", ListVillaNumbers(numbers))
	n.Get("/:id", GetVillaNumber(numbers))
	n.Post("/", CreateVillaNumber(numbers))
	n.Put("/:id", UpdateVillaNumber(numbers))
	n.Delete("/:id", DeleteVillaNumber(numbers))
}

// pathID parses the :id route parameter. Range checks are left to the
// service so that 0 reaches it and is rejected there.
func pathID(c *fiber.Ctx) (int, bool) {
	id, err := c.ParamsInt("id")
	return id, err == nil
}
