package controllers

import (
	"errors"

	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/gofiber/fiber/v3"
)

// statusError maps domain errors onto HTTP statuses. Anything
// unrecognized is a 500, which in this demo should not happen.
func statusError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnsupportedType),
		errors.Is(err, domain.ErrInvalidRecipient),
		errors.Is(err, domain.ErrInvalidPermission),
		errors.Is(err, domain.ErrInvalidPlan),
		errors.Is(err, domain.ErrConfirmationRequired),
		errors.Is(err, domain.ErrDuplicateID):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoSession):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
