package handler

import (
	"github.com/gofiber/fiber/v2"

	"magicvilla/internal/envelope"
	"magicvilla/internal/model"
	"magicvilla/internal/service"
)

// ListVillas godoc
// @Summary  List villas
// @Tags     VillaApi
// @Produce  json
// @Success  200 {object} envelope.Response
// @Router   /api/VillaApi [get]
func ListVillas(svc service.VillaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vs, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, err)
		}
		return writeEnvelope(c, envelope.List(fiber.StatusOK, model.VillaDTOs(vs)))
	}
}

// GetVilla godoc
// @Summary  Get a villa
// @Tags     VillaApi
// @Produce  json
// @Param    id path int true "Villa ID"
// @Success  200 {object} envelope.Response
// @Failure  400 {object} envelope.Response
// @Failure  404 {object} envelope.Response
// @Router   /api/VillaApi/{id} [get]
func GetVilla(svc service.VillaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, service.ErrInvalidID)
		}
		v, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeError(c, err)
		}
		return writeEnvelope(c, envelope.OK(fiber.StatusOK, v.DTO()))
	}
}

// CreateVilla godoc
// @Summary  Create a villa
// @Tags     VillaApi
// @Accept   json
// @Produce  json
// @Param    villa body model.VillaCreateDTO true "Villa"
// @Success  201 {object} envelope.Response
// @Failure  400 {object} envelope.Response
// @Router   /api/VillaApi [post]
func CreateVilla(svc service.VillaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dto model.VillaCreateDTO
		if err := c.BodyParser(&dto); err != nil {
			return writeEnvelope(c, envelope.Fail(fiber.StatusBadRequest, "invalid request body"))
		}
		v, err := svc.Create(c.UserContext(), dto)
		if err != nil {
			return writeError(c, err)
		}
		c.Location("/api/VillaApi/" + itoa(v.ID))
		return writeEnvelope(c, envelope.OK(fiber.StatusCreated, v.DTO()))
	}
}

// UpdateVilla godoc
// @Summary  Replace a villa
// @Tags     VillaApi
// @Accept   json
// @Produce  json
// @Param    id    path int                  true "Villa ID"
// @Param    villa body model.VillaUpdateDTO true "Villa"
// @Success  200 {object} envelope.Response
// @Failure  400 {object} envelope.Response
// @Failure  404 {object} envelope.Response
// @Router   /api/VillaApi/{id} [put]
func UpdateVilla(svc service.VillaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, service.ErrInvalidID)
		}
		var dto model.VillaUpdateDTO
		if err := c.BodyParser(&dto); err != nil {
			return writeEnvelope(c, envelope.Fail(fiber.StatusBadRequest, "invalid request body"))
		}
		if err := svc.Update(c.UserContext(), id, dto); err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(envelope.Empty(fiber.StatusNoContent))
	}
}

// PatchVilla godoc
// @Summary  Patch a villa with an RFC 6902 document
// @Tags     VillaApi
// @Accept   json
// @Param    id    path int    true "Villa ID"
// @Param    patch body string true "JSON Patch"
// @Success  204
// @Failure  400 {object} envelope.Response
// @Failure  404 {object} envelope.Response
// @Router   /api/VillaApi/{id} [patch]
func PatchVilla(svc service.VillaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, service.ErrInvalidID)
		}
		if len(c.Body()) == 0 {
			return writeEnvelope(c, envelope.Fail(fiber.StatusBadRequest, "patch document is required"))
		}
		// The body buffer is reused by fasthttp after the handler returns.
		patch := append([]byte(nil), c.Body()...)
		if err := svc.Patch(c.UserContext(), id, patch); err != nil {
			return writeError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteVilla godoc
// @Summary  Delete a villa
// @Tags     VillaApi
// @Produce  json
// @Param    id path int true "Villa ID"
// @Success  200 {object} envelope.Response
// @Failure  400 {object} envelope.Response
// @Failure  404 {object} envelope.Response
// @Router   /api/VillaApi/{id} [delete]
func DeleteVilla(svc service.VillaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, service.ErrInvalidID)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(envelope.Empty(fiber.StatusNoContent))
	}
}

// UploadVillaImage godoc
// @Summary  Upload the villa image (multipart/form-data, field name: file)
// @Tags     VillaApi
// @Accept   multipart/form-data
// @Produce  json
// @Param    id   path     int  true "Villa ID"
// @Param    file formData file true "Image"
// @Success  200 {object} envelope.Response
// @Failure  400 {object} envelope.Response
// @Failure  503 {object} envelope.Response
// @Router   /api/VillaApi/{id}/image [post]
func UploadVillaImage(svc service.VillaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, service.ErrInvalidID)
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return writeEnvelope(c, envelope.Fail(fiber.StatusBadRequest, "file is required"))
		}
		f, err := fh.Open()
		if err != nil {
			return writeEnvelope(c, envelope.Fail(fiber.StatusBadRequest, "cannot open uploaded file"))
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		v, err := svc.UploadImage(c.UserContext(), id, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeError(c, err)
		}
		return writeEnvelope(c, envelope.OK(fiber.StatusOK, v.DTO()))
	}
}

// VillaImage godoc
// @Summary  Redirect to a time-limited download link for the villa image
// @Tags     VillaApi
// @Param    id path int true "Villa ID"
// @Success  307
// @Failure  404 {object} envelope.Response
// @Router   /api/VillaApi/{id}/image [get]
func VillaImage(svc service.VillaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, service.ErrInvalidID)
		}
		u, err := svc.ImageURL(c.UserContext(), id)
		if err != nil {
			return writeError(c, err)
		}
		return c.Redirect(u, fiber.StatusTemporaryRedirect)
	}
}
