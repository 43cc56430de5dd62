package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"magicvilla/internal/envelope"
	"magicvilla/internal/model"
	"magicvilla/internal/service"
)

func itoa(i int) string { return strconv.Itoa(i) }

// ListVillaNumbers godoc
// @Summary  List villa numbers with their villas
// @Tags     VillaNumberApi
// @Produce  json
// @Success  200 {object} envelope.Response
// @Router   /api/VillaNumberApi [get]
func ListVillaNumbers(svc service.VillaNumberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ns, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, err)
		}
		return writeEnvelope(c, envelope.List(fiber.StatusOK, ns))
	}
}

// GetVillaNumber godoc
// @Summary  Get a villa number
// @Tags     VillaNumberApi
// @Produce  json
// @Param    id path int true "Villa number"
// @Success  200 {object} envelope.Response
// @Failure  404 {object} envelope.Response
// @Router   /api/VillaNumberApi/{id} [get]
func GetVillaNumber(svc service.VillaNumberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		no, ok := pathID(c)
		if !ok {
			return writeError(c, service.ErrInvalidID)
		}
		n, err := svc.Get(c.UserContext(), no)
		if err != nil {
			return writeError(c, err)
		}
		return writeEnvelope(c, envelope.OK(fiber.StatusOK, n))
	}
}

// CreateVillaNumber godoc
// @Summary  Create a villa number
// @Tags     VillaNumberApi
// @Accept   json
// @Produce  json
// @Param    villaNumber body model.VillaNumberCreateDTO true "Villa number"
// @Success  201 {object} envelope.Response
// @Failure  400 {object} envelope.Response
// @Router   /api/VillaNumberApi [post]
func CreateVillaNumber(svc service.VillaNumberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dto model.VillaNumberCreateDTO
		if err := c.BodyParser(&dto); err != nil {
			return writeEnvelope(c, envelope.Fail(fiber.StatusBadRequest, "invalid request body"))
		}
		n, err := svc.Create(c.UserContext(), dto)
		if err != nil {
			return writeError(c, err)
		}
		c.Location("/api/VillaNumberApi/" + itoa(n.VillaNo))
		return writeEnvelope(c, envelope.OK(fiber.StatusCreated, n))
	}
}

// UpdateVillaNumber godoc
// @Summary  Replace a villa number
// @Tags     VillaNumberApi
// @Accept   json
// @Produce  json
// @Param    id          path int                        true "Villa number"
// @Param    villaNumber body model.VillaNumberUpdateDTO true "Villa number"
// @Success  200 {object} envelope.Response
// @Failure  400 {object} envelope.Response
// @Failure  404 {object} envelope.Response
// @Router   /api/VillaNumberApi/{id} [put]
func UpdateVillaNumber(svc service.VillaNumberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		no, ok := pathID(c)
		if !ok {
			return writeError(c, service.ErrInvalidID)
		}
		var dto model.VillaNumberUpdateDTO
		if err := c.BodyParser(&dto); err != nil {
			return writeEnvelope(c, envelope.Fail(fiber.StatusBadRequest, "invalid request body"))
		}
		if err := svc.Update(c.UserContext(), no, dto); err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(envelope.Empty(fiber.StatusNoContent))
	}
}

// DeleteVillaNumber godoc
// @Summary  Delete a villa number
// @Tags     VillaNumberApi
// @Produce  json
// @Param    id path int true "Villa number"
// @Success  200 {object} envelope.Response
// @Failure  404 {object} envelope.Response
// @Router   /api/VillaNumberApi/{id} [delete]
func DeleteVillaNumber(svc service.VillaNumberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		no, ok := pathID(c)
		if !ok {
			return writeError(c, service.ErrInvalidID)
		}
		if err := svc.Delete(c.UserContext(), no); err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(envelope.Empty(fiber.StatusNoContent))
	}
}
