package handler

import (
	"net/http"

	"inkwell/internal/delivery/api/response"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the dashboard chart and the profile cards.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(analyticsUC usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// Categories handles GET /api/v1/analytics/categories
func (h *AnalyticsHandler) Categories(c echo.Context) error {
	counts, err := h.analyticsUC.CategoryCounts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, counts)
}

// Me handles GET /api/v1/analytics/me
func (h *AnalyticsHandler) Me(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stats, err := h.analyticsUC.AuthorStats(c.Request().Context(), identity.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
