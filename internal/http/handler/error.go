package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"magicvilla/internal/envelope"
	"magicvilla/internal/model"
	"magicvilla/internal/repository"
	"magicvilla/internal/service"
	"magicvilla/internal/storage"
)

// writeEnvelope writes env with its own status code as the HTTP status.
func writeEnvelope(c *fiber.Ctx, env envelope.Response) error {
	return c.Status(env.StatusCode).JSON(env)
}

// writeError maps a service or store error to a failing envelope.
// Unclassified errors are store failures and carry their text, status 500.
func writeError(c *fiber.Ctx, err error) error {
	status := statusFor(err)

	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return writeEnvelope(c, envelope.Fail(status, verr.Messages...))
	}
	return writeEnvelope(c, envelope.Fail(status, err.Error()))
}

func statusFor(err error) int {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrIDMismatch),
		errors.Is(err, service.ErrVillaExists),
		errors.Is(err, service.ErrVillaNumberExists),
		errors.Is(err, service.ErrInvalidVilla),
		errors.Is(err, service.ErrInvalidPatch),
		errors.Is(err, service.ErrReaderNil):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrNoImage),
		repository.IsKind(err, repository.KindNoRows):
		return fiber.StatusNotFound
	case repository.IsKind(err, repository.KindConflict):
		return fiber.StatusConflict
	case errors.Is(err, storage.ErrDisabled):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler returns a Fiber global error handler that answers routing
// failures with a failing envelope. Non-fiber errors never leak their text.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return writeEnvelope(c, envelope.Fail(fe.Code, fe.Message))
		}
		return writeEnvelope(c, envelope.Fail(fiber.StatusInternalServerError))
	}
}
