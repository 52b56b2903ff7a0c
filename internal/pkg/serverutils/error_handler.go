package serverutils

import (
	"errors"

	"laptop-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service-level failures to HTTP responses so
// controllers can return raw errors.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse("Session not found"))
		case errors.Is(err, service.ErrLaptopNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse("Laptop not found"))
		case errors.Is(err, service.ErrProvider):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse("Assistant is temporarily unavailable, please retry"))
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
		}
	}
}
