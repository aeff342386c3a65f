package handler

import (
	"github.com/gofiber/fiber/v2"
)

// successResponse is the envelope for all successful API responses.
// Field names are contractual.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// failureResponse is the envelope for all failed API responses.
type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeData writes a success envelope with the given status and payload.
func writeData(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(successResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// writeError writes a failure envelope without leaking internal error details.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(failureResponse{
		Success: false,
		Message: message,
	})
}

// ErrorHandler returns a Fiber global error handler that translates uncaught
// errors (including fiber.NewError from middleware) into the failure envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "internal server error"
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
			message = e.Message
		}
		return writeError(c, status, message)
	}
}
