package service

import "context"

// NotificationService sends push notifications to topic subscribers.
type NotificationService interface {
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
