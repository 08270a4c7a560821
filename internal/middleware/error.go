package middleware

import (
	"errors"
	"net/http"

	"open-instruct/internal/domain"
	"open-instruct/internal/dto"
	"open-instruct/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger := logger.Get()
		meta := ResponseMeta(c)

		// Handle validation errors
		if validationErrs, ok := err.(domain.ValidationErrors); ok {
			logger.Warn("Validation errors occurred",
				zap.String("path", c.Path()),
				zap.String("request_id", meta.RequestID),
				zap.Int("error_count", len(validationErrs)),
			)
			details := map[string]interface{}{"errors": validationErrs}
			return c.Status(http.StatusBadRequest).JSON(dto.NewErrorResponse(
				string(domain.CodeValidation), "Request validation failed", details, meta))
		}

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			logger.Error("Domain error occurred",
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.String("request_id", meta.RequestID),
				zap.Int("status", statusCode),
				zap.Error(domainErr.Cause),
			)

			return c.Status(statusCode).JSON(dto.NewErrorResponse(
				string(domainErr.Code), domainErr.Message, domainErr.Context, meta))
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			logger.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.NewErrorResponse(
				"HTTP_ERROR", fiberErr.Message, nil, meta))
		}

		// Handle unknown errors
		logger.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.String("request_id", meta.RequestID),
			zap.Error(err),
		)

		return c.Status(http.StatusInternalServerError).JSON(dto.NewErrorResponse(
			string(domain.CodeInternal), "Internal server error", nil, meta))
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound, domain.CodeObjectiveNotFound:
		return http.StatusNotFound
	case domain.CodeValidation, domain.CodeMissingField, domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodeGenerationFailed:
		return http.StatusUnprocessableEntity
	case domain.CodeGenerationTimeout:
		return http.StatusGatewayTimeout
	case domain.CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
