package handler

import (
	"net/http"

	"inkwell/internal/delivery/api/response"
	"inkwell/internal/domain/entity"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContactHandler serves the contact page.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(contactUC usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{contactUC: contactUC}
}

// ContactRequest is the contact form.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Info handles GET /api/v1/contact
func (h *ContactHandler) Info(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.contactUC.Info(c.Request().Context()))
}

// Submit handles POST /api/v1/contact
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	err := h.contactUC.Submit(c.Request().Context(), &entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"status": "received"})
}
