// Package context carries request-scoped values (request id, logger, caller)
// from the HTTP and worker deliveries down into the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
	callerKey
)

const echoRequestIDKey = "request_id"

// HeaderXRequestID is the header used to correlate client calls, API logs and worker deliveries.
const HeaderXRequestID = echo.HeaderXRequestID

// RequestID returns the id assigned to the current echo request, or a fresh one.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID records id on the echo request so responses can echo it back.
func SetRequestID(c echo.Context, id string) {
	c.Set(echoRequestIDKey, id)
}

// RequestIDFrom returns the request id stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// LoggerFrom returns the request-scoped logger, if one was attached.
func LoggerFrom(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)

	return logger, ok && logger != nil
}

// Logger returns the request-scoped logger or fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := LoggerFrom(ctx); ok {
		return logger
	}

	return fallback
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// CallerFrom returns the authenticated user id stored in ctx, or "".
func CallerFrom(ctx context.Context) string {
	userID, _ := ctx.Value(callerKey).(string)

	return userID
}

// WithCaller returns a copy of ctx carrying the authenticated user id. The
// scoped logger, when present, is tagged with the same id.
func WithCaller(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, callerKey, userID)
	if logger, ok := LoggerFrom(ctx); ok {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID)))
	}

	return ctx
}
