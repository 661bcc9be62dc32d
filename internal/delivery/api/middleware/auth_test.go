package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	mockUsecase "inkwell/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc", want: "abc", ok: true},
		{header: "bearer abc ", want: "abc", ok: true},
		{header: "Bearer ", ok: false},
		{header: "Basic abc", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := BearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, got, tt.header)
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	identity := &entity.Identity{UserID: "uid-1"}

	newContext := func(header string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		req = req.WithContext(deliverycontext.WithLogger(context.Background(), slog.Default()))
		rec := httptest.NewRecorder()

		return echo.New().NewContext(req, rec), rec
	}

	t.Run("attaches identity", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "tok").Return(identity, nil)
		c, _ := newContext("Bearer tok")

		var seen *entity.Identity
		var caller string
		err := NewAuthMiddleware(authUC).Authenticate(func(c echo.Context) error {
			seen, _ = GetIdentity(c)
			caller = deliverycontext.CallerFrom(c.Request().Context())

			return nil
		})(c)

		assert.NoError(t, err)
		assert.Equal(t, identity, seen)
		assert.Equal(t, "uid-1", caller)
	})

	t.Run("missing header", func(t *testing.T) {
		c, rec := newContext("")

		err := NewAuthMiddleware(mockUsecase.NewMockAuthUsecase(t)).Authenticate(func(echo.Context) error {
			t.Fatal("next must not run")

			return nil
		})(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_REQUIRED")
	})

	t.Run("revoked token", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "tok").Return(nil, errors.WithStack(domainerrors.ErrAuthRequired))
		c, rec := newContext("Bearer tok")

		err := NewAuthMiddleware(authUC).Authenticate(func(echo.Context) error {
			t.Fatal("next must not run")

			return nil
		})(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
