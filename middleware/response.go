package middleware

import (
	"errors"

	"careerhub/logger"
	"careerhub/services/upstream"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// ErrorHandler renders errors that escape a handler with the standard envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error!"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		logger.Log.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return JsonResponse(c, code, false, message, nil)
}

// UpstreamErrorResponse maps a third-party failure: 503 when the service has no
// credentials, 404 when the upstream resource is missing, 502 otherwise
func UpstreamErrorResponse(c *fiber.Ctx, service string, err error) error {
	if errors.Is(err, upstream.ErrNotConfigured) {
		return JsonResponse(c, fiber.StatusServiceUnavailable, false, service+" is not configured!", nil)
	}

	status := upstream.StatusCode(err)
	logger.Log.Error("upstream call failed",
		zap.String("service", service),
		zap.Int("status", status),
		zap.Error(err),
	)
	if status == fiber.StatusNotFound {
		return JsonResponse(c, fiber.StatusNotFound, false, service+" resource not found!", nil)
	}
	return JsonResponse(c, fiber.StatusBadGateway, false, service+" request failed!", nil)
}
