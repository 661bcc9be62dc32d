package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/delivery/api/response"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves the sign-up, sign-in and session endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginRequest is the email and password sign-in form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleSignInRequest carries a Google ID token obtained by the client.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// GoogleCallbackRequest carries the authorization code redirect parameters.
type GoogleCallbackRequest struct {
	Code  string `json:"code" query:"code" form:"code" validate:"required"`
	State string `json:"state" query:"state" form:"state" validate:"required"`
}

// RefreshRequest carries the refresh token of a session.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// SignUp handles POST /auth/signup
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req usecase.SignUpInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.authUC.SignUp(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.authUC.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// GoogleSignIn handles POST /auth/google
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req GoogleSignInRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.authUC.SignInWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// GoogleLogin handles GET /oauth/google/login. Browsers asking with
// ?redirect=true are sent straight to the consent page.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	redirect, err := h.authUC.GoogleAuthURL(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusFound, redirect.URL)
	}

	return response.Success(c, http.StatusOK, redirect)
}

// GoogleCallback handles POST /oauth/google/callback
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	var req GoogleCallbackRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.authUC.GoogleCallback(c.Request().Context(), req.Code, req.State)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.SignOut(c.Request().Context(), identity); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
