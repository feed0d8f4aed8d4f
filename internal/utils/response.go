package utils

import "github.com/gofiber/fiber/v2"

// MessageResponse is the body of every error and of writes that return no entity.
type MessageResponse struct {
	Message string `json:"message" example:"Movie updated successfully"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field" example:"title"`
	Error string `json:"error" example:"is required"`
}

// ValidationErrorResponse is returned when a request body fails validation.
type ValidationErrorResponse struct {
	Message string       `json:"message" example:"Invalid request body"`
	Errors  []FieldError `json:"errors"`
}

// SuccessResponse sends data as the whole JSON body
func SuccessResponse(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}

// MessageOnly sends a {"message": ...} body
func MessageOnly(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(MessageResponse{Message: message})
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return MessageOnly(c, code, message)
}

// ValidationError sends a 400 with per-field details
func ValidationError(c *fiber.Ctx, message string, errors []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
		Message: message,
		Errors:  errors,
	})
}
