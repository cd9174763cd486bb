package serverutils

import (
	"errors"

	"decktrack-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrorHandlerMiddleware maps service errors onto HTTP status codes.
// Write-path failures surface immediately; nothing here retries.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"success": false,
				"message": fiberErr.Message,
			})
		}

		status := fiber.StatusInternalServerError
		switch apperror.KindOf(err) {
		case apperror.KindNotFound:
			status = fiber.StatusNotFound
		case apperror.KindInvalidInput:
			status = fiber.StatusBadRequest
		case apperror.KindConflict:
			status = fiber.StatusConflict
		case apperror.KindUnauthorized:
			status = fiber.StatusUnauthorized
		}

		// Storage-level uniqueness violations that escaped the services.
		if status == fiber.StatusInternalServerError && errors.Is(err, gorm.ErrDuplicatedKey) {
			status = fiber.StatusConflict
		}

		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
}
