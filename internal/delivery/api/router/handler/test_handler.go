package handler

import (
	"net/http"

	"inkwell/config"
	"inkwell/internal/delivery/api/middleware"
	"inkwell/internal/delivery/api/response"
	deliverycontext "inkwell/internal/delivery/context"
	domainerrors "inkwell/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// TestHandler serves the diagnostic routes mounted when testRoutes.enabled is set.
type TestHandler struct {
	cfg *config.Config
}

// NewTestHandler is the constructor for TestHandler.
func NewTestHandler(cfg *config.Config) *TestHandler {
	return &TestHandler{cfg: cfg}
}

// TestAuthMiddleware echoes the identity attached by the auth middleware.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrAuthRequired.ErrorCode(), domainerrors.ErrAuthRequired.Message())
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"identity": identity,
		"caller":   deliverycontext.CallerFrom(c.Request().Context()),
	})
}

// TestPublicEndpoint reports which backends this instance was started with.
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	backends := map[string]any{
		"persistence": h.cfg.Persistence.Driver,
		"storage":     h.cfg.Storage != nil,
		"pubsub":      "",
	}
	if h.cfg.Auth != nil {
		backends["auth"] = h.cfg.Auth.Provider
	}
	if h.cfg.PubSub != nil {
		backends["pubsub"] = h.cfg.PubSub.Provider
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"service":  h.cfg.Env.ServiceName,
		"env":      h.cfg.Env.Env,
		"backends": backends,
	})
}
