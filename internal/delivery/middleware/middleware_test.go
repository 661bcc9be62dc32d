package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/config"
	deliverycontext "inkwell/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestScope(logger).Handle)
	e.Use(NewAccessLog(logger, cfg).Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/posts", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.RequestIDFrom(c.Request().Context()))
	})
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway) })

	return e
}

func TestRequestScope(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	t.Run("reuses inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "from-client")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "from-client", rec.Body.String())
		assert.Equal(t, "from-client", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

		require.NotEmpty(t, rec.Body.String())
		assert.Equal(t, rec.Body.String(), rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestAccessLog(t *testing.T) {
	t.Run("quiet outside debug for successful requests", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/posts", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("logs failures with request id", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-9")
		e.ServeHTTP(httptest.NewRecorder(), req)

		assert.Contains(t, buf.String(), `"status":502`)
		assert.Contains(t, buf.String(), `"request_id":"req-9"`)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})

	t.Run("debug logs everything but health", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, true)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Empty(t, buf.String())

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/posts", nil))
		assert.Contains(t, buf.String(), `"route":"/posts"`)
	})
}
