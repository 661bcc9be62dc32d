package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/config"
	"inkwell/internal/domain/constants"
	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/service"
	mockSvc "inkwell/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockSvc.MockNotificationService) {
	t.Helper()

	notifier := mockSvc.NewMockNotificationService(t)
	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notifier,
	})

	return h, notifier
}

func developConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func pushBody(t *testing.T, event service.Event, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "msg-1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(t *testing.T, h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestHandlePush_PostCreatedNotifiesCategoryTopic(t *testing.T) {
	h, notifier := newTestHandler(t, developConfig())

	post := &entity.Post{ID: "p1", Title: "Hello", Content: "Body text", Author: "Ada", Category: entity.CategoryTech}
	event := service.Event{ID: "e1", Type: constants.EventPostCreated, Post: post}

	notifier.EXPECT().
		SendToTopic(mock.Anything, "posts-tech", "New in Tech: Hello", "Body text", mock.MatchedBy(func(data map[string]string) bool {
			return data["post_id"] == "p1" && data["category"] == "Tech"
		})).
		Return(nil)

	rec := doPush(t, h, pushBody(t, event, map[string]string{"request_id": "req-1"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_ContactSubmittedNotifiesContactTopic(t *testing.T) {
	h, notifier := newTestHandler(t, developConfig())

	event := service.Event{
		ID:      "e2",
		Type:    constants.EventContactSubmitted,
		Contact: &entity.ContactMessage{Name: "Grace", Email: "g@example.com", Message: "Hi there"},
	}

	notifier.EXPECT().
		SendToTopic(mock.Anything, constants.TopicContact, "New message from Grace", "Hi there", mock.Anything).
		Return(nil)

	rec := doPush(t, h, pushBody(t, event, nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_UnhandledEventIsAcknowledged(t *testing.T) {
	h, _ := newTestHandler(t, developConfig())

	event := service.Event{ID: "e3", Type: constants.EventPostDeleted, Post: &entity.Post{ID: "p1"}}

	rec := doPush(t, h, pushBody(t, event, nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MalformedMessagesAreAcknowledged(t *testing.T) {
	h, _ := newTestHandler(t, developConfig())

	t.Run("bad base64", func(t *testing.T) {
		rec := doPush(t, h, `{"message":{"data":"%%%","messageId":"m"}}`, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("bad event json", func(t *testing.T) {
		data := base64.StdEncoding.EncodeToString([]byte("not json"))
		rec := doPush(t, h, `{"message":{"data":"`+data+`","messageId":"m"}}`, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("post event without post", func(t *testing.T) {
		rec := doPush(t, h, pushBody(t, service.Event{ID: "e", Type: constants.EventPostCreated}, nil), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandlePush_RetryableFailureAsksForRedelivery(t *testing.T) {
	h, notifier := newTestHandler(t, developConfig())
	errUnavailable := errors.New("unavailable")
	h.retryable = func(err error) bool { return errors.Is(err, errUnavailable) }

	event := service.Event{ID: "e4", Type: constants.EventPostCreated, Post: &entity.Post{ID: "p", Category: entity.CategoryHealth}}

	t.Run("retryable", func(t *testing.T) {
		notifier.EXPECT().SendToTopic(mock.Anything, "posts-health", mock.Anything, mock.Anything, mock.Anything).
			Return(errUnavailable).Once()

		rec := doPush(t, h, pushBody(t, event, nil), nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("permanent", func(t *testing.T) {
		notifier.EXPECT().SendToTopic(mock.Anything, "posts-health", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("invalid topic")).Once()

		rec := doPush(t, h, pushBody(t, event, nil), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandlePush_VerifiesGoogleTokenOutsideDevelopment(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.example.com/push",
	}}
	cfg.Env.Env = constants.EnvProduction

	h, notifier := newTestHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad token")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]interface{}{"email_verified": true}}, nil
	}

	event := service.Event{ID: "e5", Type: constants.EventPostUpdated}

	t.Run("missing header", func(t *testing.T) {
		rec := doPush(t, h, pushBody(t, event, nil), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := doPush(t, h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer nope"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		rec := doPush(t, h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer good"}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://worker.example.com/push", gotAudience)
	})

	notifier.AssertNotCalled(t, "SendToTopic")
}

func TestPostTopic(t *testing.T) {
	assert.Equal(t, "posts-lifestyle", PostTopic(entity.CategoryLifestyle))
}

func TestExtractRequestID(t *testing.T) {
	h, _ := newTestHandler(t, developConfig())

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	event := service.Event{RequestID: "from-event"}
	assert.Equal(t, "from-attr", h.extractRequestID(context.Background(), &msg, &event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(context.Background(), &msg, &event))

	event.RequestID = ""
	assert.NotEmpty(t, h.extractRequestID(context.Background(), &msg, &event))
}
