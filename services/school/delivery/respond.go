package delivery

import (
	"errors"

	"schoolmgmt/config"
	"schoolmgmt/domain"

	"github.com/gofiber/fiber/v2"
)

var log = config.GetLogrusInstance()

func statusFor(category domain.ErrorCategory) int {
	switch category {
	case domain.ErrNotFound:
		return fiber.StatusNotFound
	case domain.ErrConflict:
		return fiber.StatusConflict
	case domain.ErrValidationFailed:
		return fiber.StatusUnprocessableEntity
	case domain.ErrUnauthorized:
		return fiber.StatusUnauthorized
	case domain.ErrUpstreamUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// fail maps a usecase error onto the HTTP envelope. Anything outside the
// domain taxonomy is logged and rendered as a bare 500.
func fail(c *fiber.Ctx, err error) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return c.Status(statusFor(derr.Category)).JSON(fiber.Map{
			"success": false,
			"error":   derr,
		})
	}

	log.WithError(err).Error("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   fiber.Map{"category": "internal", "detail": "internal server error"},
	})
}

func ok(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": data})
}

func created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

func badBody(c *fiber.Ctx) error {
	return fail(c, domain.Validationf("malformed request body"))
}
