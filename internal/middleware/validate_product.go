package middleware

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"vinylstore/internal/models"
	"vinylstore/internal/validation"
)

// ProductInputKey is the Locals key under which the validated payload is
// handed to downstream handlers.
const ProductInputKey = "productInput"

// ValidateProduct is a Fiber middleware that parses and validates the
// product payload on write operations. Every violation is collected and the
// request is rejected with the full list before it can reach persistence.
func ValidateProduct(v *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input models.ProductInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Cuerpo de la petición inválido",
			})
		}

		if fieldErrors := validation.ValidateProduct(v, &input); fieldErrors != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Error de validación",
				"errors":  fieldErrors,
			})
		}

		c.Locals(ProductInputKey, &input)
		return c.Next()
	}
}
