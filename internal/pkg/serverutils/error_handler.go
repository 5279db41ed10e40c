package serverutils

import (
	"errors"

	"fx-backoffice-be/internal/pkg/apperr"
	"fx-backoffice-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// HandleError converts a service error into the JSON envelope with the
// status code from the failure taxonomy.
func HandleError(ctx *fiber.Ctx, err error) error {
	code := apperr.StatusCode(err)
	return ctx.Status(code).JSON(ErrorResponse(code, apperr.PublicMessage(err)))
}

// NewFiberErrorHandler is wired into the fiber app config so panics and
// unhandled errors share the same envelope.
func NewFiberErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
		}
		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return HandleError(ctx, err)
	}
}
