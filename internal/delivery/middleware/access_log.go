package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"inkwell/config"
	deliverycontext "inkwell/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccessLog writes one line per request. Outside debug mode only failed
// requests are logged. Health probes are never logged.
type AccessLog struct {
	logger *slog.Logger
	debug  bool
	skip   map[string]struct{}
}

// NewAccessLog is the constructor for AccessLog.
func NewAccessLog(logger *slog.Logger, cfg *config.Config) *AccessLog {
	return &AccessLog{
		logger: logger,
		debug:  cfg.Env.Debug,
		skip:   map[string]struct{}{"/health": {}},
	}
}

// Handle is the echo middleware func.
func (m *AccessLog) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := m.skip[c.Path()]; ok {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.write(c, start, err)

		return err
	}
}

func (m *AccessLog) write(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	status := res.Status
	if err != nil && !res.Committed {
		// The error handler has not run yet, so report what it will most likely send.
		status = statusOf(err)
	}
	if !m.debug && status < 400 {
		return
	}

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.RequestURI()),
		slog.Int("status", status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if userID := deliverycontext.CallerFrom(req.Context()); userID != "" {
		attrs = append(attrs, slog.String("user_id", userID))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	logger := deliverycontext.Logger(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP request", attrs...)
}

func statusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	return http.StatusInternalServerError
}
