// Package handler contains the worker's push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"inkwell/config"
	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/constants"
	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/service"
	"inkwell/internal/infra/notification"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const excerptRunes = 80

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenValidator checks a push bearer token against the expected audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns post and contact events into topic notifications.
type PushHandler struct {
	verifyPushAuth  bool
	audience        string
	validateToken   TokenValidator
	logger          *slog.Logger
	notificationSvc service.NotificationService
	retryable       func(error) bool
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config.PubSub

	// Push auth is only meaningful for Google-delivered messages outside development
	verifyPushAuth := cfg != nil &&
		cfg.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	h := &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		validateToken:   idtoken.Validate,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		retryable:       notification.IsRetryable,
	}
	if cfg != nil {
		h.audience = cfg.PushAudience
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages. Malformed messages are
// acknowledged so the bus does not redeliver them forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusNoContent)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusNoContent)
	}

	var event service.Event
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusNoContent)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing event",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 asks the bus to redeliver; anything else is acknowledged
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.Event) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.Event) error {
	logger := deliverycontext.Logger(ctx, h.logger)

	switch event.Type {
	case constants.EventPostCreated:
		if event.Post == nil {
			return errors.New("post.created event without post")
		}

		return h.send(ctx, PostTopic(event.Post.Category), postNotification(event.Post))

	case constants.EventContactSubmitted:
		if event.Contact == nil {
			return errors.New("contact.submitted event without message")
		}

		return h.send(ctx, constants.TopicContact, contactNotification(event.Contact))

	default:
		logger.Info("[Worker] Event acknowledged without action", slog.String("event_type", event.Type))

		return nil
	}
}

type pushNotification struct {
	title string
	body  string
	data  map[string]string
}

func (h *PushHandler) send(ctx context.Context, topic string, n pushNotification) error {
	if err := h.notificationSvc.SendToTopic(ctx, topic, n.title, n.body, n.data); err != nil {
		if h.retryable(err) {
			return newRetryableError(err)
		}

		return err
	}

	deliverycontext.Logger(ctx, h.logger).Info("[Worker] Notification sent", slog.String("topic", topic))

	return nil
}

// PostTopic is the notification topic of a category, e.g. posts-tech.
func PostTopic(category entity.Category) string {
	return constants.TopicPostPrefix + strings.ToLower(string(category))
}

func postNotification(post *entity.Post) pushNotification {
	return pushNotification{
		title: fmt.Sprintf("New in %s: %s", post.Category, post.Title),
		body:  post.Excerpt(excerptRunes),
		data: map[string]string{
			"post_id":  post.ID,
			"category": string(post.Category),
			"author":   post.Author,
		},
	}
}

func contactNotification(msg *entity.ContactMessage) pushNotification {
	post := entity.Post{Content: msg.Message}

	return pushNotification{
		title: "New message from " + msg.Name,
		body:  post.Excerpt(excerptRunes),
		data: map[string]string{
			"name":  msg.Name,
			"email": msg.Email,
		},
	}
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
