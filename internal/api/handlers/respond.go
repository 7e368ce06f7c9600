package handlers

import (
	"Dining-Menu-Backend/domain"
	"Dining-Menu-Backend/internal/api/presenters"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func presentSuccess(c *fiber.Ctx, data interface{}, code int, message string) error {
	return presenters.SuccessResponse(c, data, code, message)
}

func presentError(c *fiber.Ctx, code int, message string, err error) error {
	return presenters.ErrorResponse(c, code, message, err)
}

// presentServiceError maps the service error taxonomy onto HTTP codes:
// validation 400, missing reference 404, everything else 500.
func presentServiceError(c *fiber.Ctx, message string, err error) error {
	switch {
	case domain.IsValidation(err),
		errors.Is(err, domain.ErrLatitudeOutOfRange),
		errors.Is(err, domain.ErrLongitudeOutOfRange),
		errors.Is(err, domain.ErrEmptyLocationName),
		errors.Is(err, domain.ErrEndBeforeStart),
		errors.Is(err, domain.ErrDuplicateMenuFood):
		return presentError(c, fiber.StatusBadRequest, message, err)
	case errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrMenuNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return presentError(c, fiber.StatusNotFound, message, err)
	default:
		return presentError(c, fiber.StatusInternalServerError, message, err)
	}
}
