package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inkwell/config"
	apimiddleware "inkwell/internal/delivery/api/middleware"
	"inkwell/internal/delivery/api/validator"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/service"
	mockUsecase "inkwell/internal/mocks/usecase"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "good-token"

var testIdentity = &entity.Identity{UserID: "uid-1", Email: "ada@example.com", Provider: entity.ProviderTypePassword}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

type testServer struct {
	echo    *echo.Echo
	auth    *mockUsecase.MockAuthUsecase
	posts   *mockUsecase.MockPostUsecase
	profile *mockUsecase.MockProfileUsecase
	stats   *mockUsecase.MockAnalyticsUsecase
	contact *mockUsecase.MockContactUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{
		echo:    echo.New(),
		auth:    mockUsecase.NewMockAuthUsecase(t),
		posts:   mockUsecase.NewMockPostUsecase(t),
		profile: mockUsecase.NewMockProfileUsecase(t),
		stats:   mockUsecase.NewMockAnalyticsUsecase(t),
		contact: mockUsecase.NewMockContactUsecase(t),
	}
	s.echo.Validator = validator.New()
	s.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	authenticate := apimiddleware.NewAuthMiddleware(s.auth).Authenticate
	authHandler := NewAuthHandler(AuthHandlerParams{AuthUC: s.auth, Logger: slog.Default()})
	postHandler := NewPostHandler(PostHandlerParams{PostUC: s.posts, Logger: slog.Default()})
	imageHandler := NewImageHandler(ImageHandlerParams{PostUC: s.posts, Logger: slog.Default()})
	profileHandler := NewProfileHandler(ProfileHandlerParams{ProfileUC: s.profile, Logger: slog.Default()})
	analyticsHandler := NewAnalyticsHandler(s.stats)
	contactHandler := NewContactHandler(s.contact)

	s.echo.POST("/auth/signup", authHandler.SignUp)
	s.echo.POST("/auth/login", authHandler.Login)
	s.echo.POST("/auth/logout", authHandler.Logout, authenticate)
	s.echo.GET("/oauth/google/login", authHandler.GoogleLogin)
	s.echo.POST("/oauth/google/callback", authHandler.GoogleCallback)
	s.echo.GET("/images/*", imageHandler.Serve)
	s.echo.POST("/api/v1/images", imageHandler.Upload, authenticate)
	s.echo.GET("/api/v1/posts", postHandler.ListRecent)
	s.echo.GET("/api/v1/posts/:id", postHandler.Get)
	s.echo.GET("/api/v1/posts/:id/qr", postHandler.ShareCode)
	s.echo.POST("/api/v1/posts", postHandler.Create, authenticate)
	s.echo.PATCH("/api/v1/posts/:id", postHandler.Update, authenticate)
	s.echo.DELETE("/api/v1/posts/:id", postHandler.Remove, authenticate)
	s.echo.GET("/api/v1/me/posts", postHandler.ListMine, authenticate)
	s.echo.PUT("/api/v1/profile", profileHandler.Update, authenticate)
	s.echo.GET("/api/v1/analytics/categories", analyticsHandler.Categories)
	s.echo.POST("/api/v1/contact", contactHandler.Submit)

	cfg := &config.Config{}
	cfg.Env.ServiceName = "inkwell"
	cfg.Persistence.Driver = config.DriverSQLite
	cfg.Auth = &config.AuthConfig{Provider: config.AuthProviderLocal}
	testHandler := NewTestHandler(cfg)
	s.echo.GET("/test/public", testHandler.TestPublicEndpoint)
	s.echo.GET("/test/auth", testHandler.TestAuthMiddleware, authenticate)

	return s
}

func (s *testServer) signedIn() {
	s.auth.EXPECT().Authenticate(mock.Anything, testToken).Return(testIdentity, nil)
}

func (s *testServer) do(t *testing.T, method, target string, body io.Reader, contentType string, authed bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (s *testServer) doJSON(t *testing.T, method, target, body string, authed bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	return s.do(t, method, target, strings.NewReader(body), echo.MIMEApplicationJSON, authed)
}

func TestAuthHandler_SignUp(t *testing.T) {
	t.Run("creates account", func(t *testing.T) {
		s := newTestServer(t)
		s.auth.EXPECT().SignUp(mock.Anything, &usecase.SignUpInput{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "secret1",
		}).Return(&entity.AuthSession{Token: "tok", Identity: *testIdentity}, nil)

		rec, env := s.doJSON(t, http.MethodPost, "/auth/signup",
			`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"secret1"}`, false)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"token":"tok"`)
	})

	t.Run("rejects invalid email before calling the use case", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.doJSON(t, http.MethodPost, "/auth/signup",
			`{"firstName":"Ada","lastName":"Lovelace","email":"nope","password":"secret1"}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "email")
	})

	t.Run("duplicate email", func(t *testing.T) {
		s := newTestServer(t)
		s.auth.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrUserAlreadyExists))

		rec, env := s.doJSON(t, http.MethodPost, "/auth/signup",
			`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"secret1"}`, false)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	s := newTestServer(t)
	s.auth.EXPECT().SignIn(mock.Anything, "ada@example.com", "wrong").Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec, env := s.doJSON(t, http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("requires bearer token", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.doJSON(t, http.MethodPost, "/auth/logout", `{}`, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTH_REQUIRED", env.Error.Code)
	})

	t.Run("revokes session", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn()
		s.auth.EXPECT().SignOut(mock.Anything, testIdentity).Return(nil)

		rec, _ := s.doJSON(t, http.MethodPost, "/auth/logout", `{}`, true)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		s := newTestServer(t)
		s.auth.EXPECT().Authenticate(mock.Anything, testToken).Return(nil, errors.WithStack(domainerrors.ErrAuthRequired))

		rec, _ := s.doJSON(t, http.MethodPost, "/auth/logout", `{}`, true)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_GoogleFlow(t *testing.T) {
	t.Run("returns consent url", func(t *testing.T) {
		s := newTestServer(t)
		s.auth.EXPECT().GoogleAuthURL(mock.Anything).Return(&usecase.OAuthRedirect{URL: "https://accounts.google.com/o?state=abc", State: "abc"}, nil)

		rec, env := s.doJSON(t, http.MethodGet, "/oauth/google/login", "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"state":"abc"`)
	})

	t.Run("redirects browsers", func(t *testing.T) {
		s := newTestServer(t)
		s.auth.EXPECT().GoogleAuthURL(mock.Anything).Return(&usecase.OAuthRedirect{URL: "https://accounts.google.com/o", State: "abc"}, nil)

		rec, _ := s.doJSON(t, http.MethodGet, "/oauth/google/login?redirect=true", "", false)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://accounts.google.com/o", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("callback with expired state", func(t *testing.T) {
		s := newTestServer(t)
		s.auth.EXPECT().GoogleCallback(mock.Anything, "code-1", "stale").Return(nil, errors.WithStack(domainerrors.ErrOAuthStateInvalid))

		rec, env := s.doJSON(t, http.MethodPost, "/oauth/google/callback", `{"code":"code-1","state":"stale"}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "OAUTH_STATE_INVALID", env.Error.Code)
	})
}

func TestPostHandler_ListRecent(t *testing.T) {
	t.Run("passes limit", func(t *testing.T) {
		s := newTestServer(t)
		s.posts.EXPECT().ListRecent(mock.Anything, 5).Return([]*entity.Post{{ID: "p1", Title: "Hi"}}, nil)

		rec, env := s.doJSON(t, http.MethodGet, "/api/v1/posts?limit=5", "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"id":"p1"`)
	})

	t.Run("rejects bad limit", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.doJSON(t, http.MethodGet, "/api/v1/posts?limit=abc", "", false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("backend failure hides details", func(t *testing.T) {
		s := newTestServer(t)
		s.posts.EXPECT().ListRecent(mock.Anything, 0).Return(nil, errors.WithStack(domainerrors.NewBackendError(errors.New("dial tcp"), "list posts")))

		rec, env := s.doJSON(t, http.MethodGet, "/api/v1/posts", "", false)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "BACKEND_UNAVAILABLE", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})
}

func TestPostHandler_Get(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		s := newTestServer(t)
		s.posts.EXPECT().Get(mock.Anything, "p1").Return(&entity.Post{ID: "p1"}, nil)

		rec, _ := s.doJSON(t, http.MethodGet, "/api/v1/posts/p1", "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rendered", func(t *testing.T) {
		s := newTestServer(t)
		s.posts.EXPECT().Render(mock.Anything, "p1").Return(&usecase.RenderedPost{Post: &entity.Post{ID: "p1"}, HTML: "<p>x</p>"}, nil)

		rec, env := s.doJSON(t, http.MethodGet, "/api/v1/posts/p1?format=html", "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"html"`)
	})

	t.Run("missing", func(t *testing.T) {
		s := newTestServer(t)
		s.posts.EXPECT().Get(mock.Anything, "gone").Return(nil, errors.WithStack(domainerrors.ErrPostNotFound))

		rec, env := s.doJSON(t, http.MethodGet, "/api/v1/posts/gone", "", false)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "POST_NOT_FOUND", env.Error.Code)
	})
}

func TestPostHandler_ShareCode(t *testing.T) {
	s := newTestServer(t)
	s.posts.EXPECT().ShareCode(mock.Anything, "p1").Return([]byte("\x89PNG"), nil)

	rec, _ := s.doJSON(t, http.MethodGet, "/api/v1/posts/p1/qr", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestPostHandler_Create(t *testing.T) {
	t.Run("requires session", func(t *testing.T) {
		s := newTestServer(t)

		rec, _ := s.doJSON(t, http.MethodPost, "/api/v1/posts", `{"title":"t","content":"c","category":"Tech"}`, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("creates", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn()
		s.posts.EXPECT().Create(mock.Anything, testIdentity, &entity.PostDraft{
			Title: "t", Content: "c", Category: entity.CategoryTech,
		}).Return(&entity.Post{ID: "new", Title: "t", CreatedAt: time.Now()}, nil)

		rec, env := s.doJSON(t, http.MethodPost, "/api/v1/posts", `{"title":"t","content":"c","category":"Tech"}`, true)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"id":"new"`)
	})

	t.Run("blank title", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn()

		rec, env := s.doJSON(t, http.MethodPost, "/api/v1/posts", `{"title":"","content":"c","category":"Tech"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn()

		rec, env := s.doJSON(t, http.MethodPost, "/api/v1/posts", `{"title":`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestPostHandler_UpdateAndRemove(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn()
		s.posts.EXPECT().Update(mock.Anything, testIdentity, "p1", mock.MatchedBy(func(p entity.PostPatch) bool {
			return p.Title != nil && *p.Title == "New" && p.Content == nil && p.ImageURL == nil
		})).Return(&entity.Post{ID: "p1", Title: "New"}, nil)

		rec, _ := s.doJSON(t, http.MethodPatch, "/api/v1/posts/p1", `{"title":"New"}`, true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not owner", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn()
		s.posts.EXPECT().Update(mock.Anything, testIdentity, "p1", mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrForbidden))

		rec, env := s.doJSON(t, http.MethodPatch, "/api/v1/posts/p1", `{"title":"New"}`, true)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})

	t.Run("remove", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn()
		s.posts.EXPECT().Remove(mock.Anything, testIdentity, "p1").Return(nil)

		rec, _ := s.doJSON(t, http.MethodDelete, "/api/v1/posts/p1", "", true)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("remove twice", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn()
		s.posts.EXPECT().Remove(mock.Anything, testIdentity, "p1").Return(errors.WithStack(domainerrors.ErrPostNotFound))

		rec, _ := s.doJSON(t, http.MethodDelete, "/api/v1/posts/p1", "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPostHandler_ListMine(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()
	s.posts.EXPECT().ListMine(mock.Anything, testIdentity).Return([]*entity.Post{}, nil)

	rec, env := s.doJSON(t, http.MethodGet, "/api/v1/me/posts", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestImageHandler(t *testing.T) {
	t.Run("upload", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn()
		s.posts.EXPECT().UploadImage(mock.Anything, testIdentity, mock.MatchedBy(func(u *service.ImageUpload) bool {
			return u.Filename == "cat.png" && u.Size == 4
		})).Return("http://localhost/images/posts/uid-1/x.png", nil)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("image", "cat.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("data"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		rec, env := s.do(t, http.MethodPost, "/api/v1/images", &body, writer.FormDataContentType(), true)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), "x.png")
	})

	t.Run("upload without file", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn()

		rec, env := s.doJSON(t, http.MethodPost, "/api/v1/images", `{}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("serve", func(t *testing.T) {
		s := newTestServer(t)
		s.posts.EXPECT().OpenImage(mock.Anything, "posts/uid-1/x.png").Return(io.NopCloser(strings.NewReader("data")), "image/png", nil)

		rec, _ := s.do(t, http.MethodGet, "/images/posts/uid-1/x.png", nil, "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "data", rec.Body.String())
	})
}

func TestProfileHandler_Update(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()
	s.profile.EXPECT().UpdateProfile(mock.Anything, "uid-1", mock.MatchedBy(func(p entity.ProfilePatch) bool {
		return p.FirstName != nil && *p.FirstName == "Grace" && p.Email == nil
	})).Return(&entity.Profile{UserID: "uid-1", FirstName: "Grace"}, nil)

	rec, env := s.doJSON(t, http.MethodPut, "/api/v1/profile", `{"firstName":"Grace"}`, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"firstName":"Grace"`)
}

func TestAnalyticsHandler_Categories(t *testing.T) {
	s := newTestServer(t)
	s.stats.EXPECT().CategoryCounts(mock.Anything).Return([]entity.CategoryCount{{Category: entity.CategoryTech, Count: 2}}, nil)

	rec, env := s.doJSON(t, http.MethodGet, "/api/v1/analytics/categories", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"category":"Tech","count":2}]`, string(env.Data))
}

func TestContactHandler_Submit(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		s := newTestServer(t)
		s.contact.EXPECT().Submit(mock.Anything, &entity.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hi"}).Return(nil)

		rec, _ := s.doJSON(t, http.MethodPost, "/api/v1/contact", `{"name":"Ada","email":"ada@example.com","message":"Hi"}`, false)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("missing message", func(t *testing.T) {
		s := newTestServer(t)

		rec, _ := s.doJSON(t, http.MethodPost, "/api/v1/contact", `{"name":"Ada","email":"ada@example.com"}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTestHandler(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(t, http.MethodGet, "/test/public", nil, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"persistence":"sqlite"`)
	assert.Contains(t, string(body.Data), `"auth":"local"`)

	s.signedIn()
	rec, body = s.do(t, http.MethodGet, "/test/auth", nil, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"caller":"uid-1"`)
}
