// Package worker serves the push endpoint of the post worker.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"inkwell/config"
	"inkwell/internal/delivery"
	"inkwell/internal/delivery/middleware"
	"inkwell/internal/delivery/worker/handler"
	"inkwell/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the post worker's HTTP server. It listens on
// worker.port so it can run next to the API on one host.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	logger := params.Logger.With(slog.String("component", "postworker"))

	e := NewEcho(params.Cfg, logger)
	e.POST("/push", params.PushHandler.HandlePush)

	srv := &workerServer{
		port:   params.Cfg.Worker.Port,
		logger: logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the worker's echo instance with its middleware and health route.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestScope(logger).Handle)
	e.Use(middleware.NewAccessLog(logger, cfg).Handle)
	// Push envelopes carry only ids and short fields, never post bodies.
	e.Use(echomiddleware.BodyLimit(cfg.Worker.MaxRequestBodySize))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": cfg.Env.ServiceName + "-postworker",
		})
	})

	return e
}

func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting post worker", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down post worker")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
