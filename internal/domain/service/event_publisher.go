package service

import (
	"context"
	"time"

	"inkwell/internal/domain/entity"
)

// Event is a lifecycle message put on the event bus for the post worker.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`

	Post    *entity.Post           `json:"post,omitempty"`
	Contact *entity.ContactMessage `json:"contact,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
