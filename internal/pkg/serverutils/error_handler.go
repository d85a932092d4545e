package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandlerMiddleware converts returned errors into JSON responses.
// AppErrors keep their status and message; anything else becomes a 500 with
// the details confined to the log.
func ErrorHandlerMiddleware(logger *zap.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			if appErr.StatusCode >= fiber.StatusInternalServerError {
				logger.Error("request failed",
					zap.String("path", ctx.Path()),
					zap.Error(err))
			}
			return ctx.Status(appErr.StatusCode).JSON(ErrorResponse(appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		logger.Error("unhandled error",
			zap.String("path", ctx.Path()),
			zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
	}
}
