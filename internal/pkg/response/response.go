package response

import (
	"dmaker/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	ErrorCode domain.ErrorCode `json:"errorCode"`
	Message   string           `json:"message"`
}

// Success sends a 200 response with data as the body
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, code domain.ErrorCode, message string) error {
	return c.Status(statusCode).JSON(ErrorResponse{
		ErrorCode: code,
		Message:   message,
	})
}

// StatusOf maps an error code to its HTTP status
func StatusOf(code domain.ErrorCode) int {
	switch code {
	case domain.CodeNoDeveloper:
		return fiber.StatusNotFound
	case domain.CodeDuplicatedMemberID:
		return fiber.StatusConflict
	case domain.CodeLevelExperienceYearsNotMatched, domain.CodeInvalidRequest:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// InternalServerError sends a 500 response with the generic message
func InternalServerError(c *fiber.Ctx) error {
	code := domain.CodeInternalServerError
	return Error(c, fiber.StatusInternalServerError, code, code.Message())
}
