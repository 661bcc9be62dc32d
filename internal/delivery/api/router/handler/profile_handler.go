package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/delivery/api/response"
	"inkwell/internal/domain/entity"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the settings page.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest is the settings form. Omitted fields are left untouched.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,max=254"`
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// Update handles PUT /api/v1/profile
func (h *ProfileHandler) Update(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), identity.UserID, entity.ProfilePatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
