package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"vinylstore/internal/apperrors"
)

// NewErrorHandler returns the terminal Fiber error handler. All handler
// failures funnel here to be translated into the client-visible shape:
// duplicate key → 409, unreachable store → 503, anything else the error's
// declared status with a 500 default. Outside production the underlying
// cause is included for diagnostics.
func NewErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)

		var appErr *apperrors.Error
		if !errors.As(err, &appErr) {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				appErr = &apperrors.Error{Status: fiberErr.Code, Message: fiberErr.Message}
			} else {
				appErr = apperrors.FromDatabase(err)
			}
		}

		body := fiber.Map{
			"success": false,
			"message": appErr.Message,
		}
		if !production && appErr.Err != nil {
			body["error"] = appErr.Err.Error()
		}
		return c.Status(appErr.Status).JSON(body)
	}
}
