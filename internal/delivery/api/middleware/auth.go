package middleware

import (
	"strings"

	"inkwell/internal/delivery/api/response"
	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// AuthMiddleware verifies bearer tokens and attaches the caller's identity.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects requests without a valid "Authorization: Bearer" token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrAuthRequired.ErrorCode(), domainerrors.ErrAuthRequired.Message())
		}

		ctx := c.Request().Context()
		identity, err := m.authUC.Authenticate(ctx, token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		SetIdentity(c, identity)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithCaller(ctx, identity.UserID)))

		return next(c)
	}
}

// BearerToken extracts the token of an Authorization header value.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])

	return token, token != ""
}

// SetIdentity stores the verified caller on the echo context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(identityKey, identity)
}

// GetIdentity returns the caller set by Authenticate.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(identityKey).(*entity.Identity)

	return identity, ok && identity != nil
}
