// Package middleware holds the echo middleware shared by the API and the post worker.
package middleware

import (
	"log/slog"

	deliverycontext "inkwell/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestScope assigns every request an id and a logger tagged with it.
// An inbound X-Request-Id (set by inkctl or the publisher) is reused.
type RequestScope struct {
	logger *slog.Logger
}

// NewRequestScope is the constructor for RequestScope.
func NewRequestScope(logger *slog.Logger) *RequestScope {
	return &RequestScope{logger: logger}
}

// Handle is the echo middleware func.
func (m *RequestScope) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
