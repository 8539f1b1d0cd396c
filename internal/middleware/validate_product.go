package middleware

import (
	"github.com/gofiber/fiber/v2"

	"katalog/internal/models"
	"katalog/internal/responses"
	"katalog/internal/validation"
)

// ProductInputKey is the locals key under which ValidateProduct stores the
// parsed input for the downstream handler.
const ProductInputKey = "productInput"

// ValidateProduct parses and validates the inbound product record ahead of
// the create and update handlers. On any rule failure the request is halted
// with the 400 validation envelope and never reaches the handler; otherwise
// the input continues unchanged via locals.
func ValidateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in models.ProductInput
		if err := c.BodyParser(&in); err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if errs := validation.CheckProduct(&in); len(errs) > 0 {
			return responses.ValidationFailed(c, errs)
		}

		c.Locals(ProductInputKey, &in)
		return c.Next()
	}
}
