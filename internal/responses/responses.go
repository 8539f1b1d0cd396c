// Package responses builds the uniform JSON envelope every endpoint returns
// and hosts the terminal error handler that converts unhandled failures into
// that same shape.
package responses

import (
	"github.com/gofiber/fiber/v2"

	"katalog/internal/validation"
)

// Envelope is the wire shape shared by every response, success or failure.
type Envelope struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Data    interface{}             `json:"data,omitempty"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// Success writes a 200 envelope. Data is omitted when nil; every successful
// operation reports 200, including create, update and delete.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope with the caller-supplied status code.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{
		Success: false,
		Message: message,
	})
}

// ValidationFailed writes the 400 envelope carrying the ordered field errors.
func ValidationFailed(c *fiber.Ctx, errs []validation.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(Envelope{
		Success: false,
		Message: "Validation errors",
		Errors:  errs,
	})
}

// ErrorHandler is the terminal stage for anything a handler did not deal with
// locally. A *fiber.Error keeps its status code; everything else becomes a 500
// with the error's message. It responds exactly once and never re-throws.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else if err != nil && err.Error() != "" {
		message = err.Error()
	}

	return Error(c, code, message)
}
