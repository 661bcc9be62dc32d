// Package middleware holds the echo middleware specific to the API server.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"inkwell/internal/delivery/api/response"
	deliverycontext "inkwell/internal/delivery/context"
	domainerrors "inkwell/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every error that reaches echo in the API envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware is the constructor for ErrorMiddleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.HandleAppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.HandleAppError(c, fromHTTPError(httpErr))

		return
	}

	deliverycontext.Logger(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("route", c.Path()),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

// fromHTTPError maps errors raised by echo itself (routing, body limit,
// binding) onto the domain catalogue so clients see one set of codes.
func fromHTTPError(httpErr *echo.HTTPError) domainerrors.AppError {
	switch httpErr.Code {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound
	case http.StatusUnauthorized:
		return domainerrors.ErrAuthRequired
	case http.StatusRequestEntityTooLarge:
		return domainerrors.NewBaseError(httpErr.Code, "PAYLOAD_TOO_LARGE", "Request body is too large", "")
	case http.StatusBadRequest:
		message := "Malformed request"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return domainerrors.ErrValidationFailed.WithDetails(message)
	}

	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok {
		message = msg
	}

	return domainerrors.NewBaseError(httpErr.Code, "HTTP_"+strconv.Itoa(httpErr.Code), message, "")
}
