package notification

import (
	"context"
	"log/slog"
	"regexp"

	"inkwell/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// FCM topic names are limited to this alphabet.
var topicPattern = regexp.MustCompile(`^[a-zA-Z0-9-_.~%]{1,900}$`)

// messageSender is the subset of *messaging.Client used here.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	logger *slog.Logger
}

// NewFirebaseService creates a notification service backed by Firebase Cloud Messaging.
func NewFirebaseService(client *messaging.Client, logger *slog.Logger) service.NotificationService {
	return &firebaseService{
		client: client,
		logger: logger,
	}
}

// SendToTopic sends a push notification to every device subscribed to topic.
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	if !topicPattern.MatchString(topic) {
		return errors.Errorf("invalid topic name: %q", topic)
	}

	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.Debug("Topic notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

// IsRetryable reports whether a send failure is transient.
func IsRetryable(err error) bool {
	return messaging.IsUnavailable(err) || messaging.IsInternal(err) || messaging.IsQuotaExceeded(err)
}

type logService struct {
	logger *slog.Logger
}

// NewLogService returns a notification service that only logs. Used when Firebase is not configured.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendToTopic(_ context.Context, topic, title, body string, data map[string]string) error {
	s.logger.Info("[LogNotification] Topic notification",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
