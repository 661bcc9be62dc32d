package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"inkwell/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/post-events"
	localMaxAttempts  = 3
	localRetryBackoff = 200 * time.Millisecond
)

// localHTTPPublisher pushes events straight to the post worker in the same
// envelope Cloud Pub/Sub push subscriptions use. A 503 from the worker is
// redelivered a few times, the way a push subscription would.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	backoff    time.Duration
}

// PubSubPushMessage is the push subscription envelope.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates the development publisher targeting endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
		backoff:    localRetryBackoff,
	}
}

func (p *localHTTPPublisher) Publish(ctx context.Context, event *service.Event) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PubSubPushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.ID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	for attempt := 1; ; attempt++ {
		status, err := p.push(ctx, body, event.RequestID)
		switch {
		case err != nil:
			return err
		case status >= 200 && status < 300:
			p.logger.Debug("[LocalPubSub] Event delivered",
				slog.String("event_id", event.ID),
				slog.String("event_type", event.Type),
				slog.Int("attempt", attempt),
			)

			return nil
		case status != http.StatusServiceUnavailable || attempt == localMaxAttempts:
			return errors.Errorf("worker rejected %s with status %d after %d attempt(s)", event.Type, status, attempt)
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.backoff * time.Duration(attempt)):
		}
	}
}

func (p *localHTTPPublisher) push(ctx context.Context, body []byte, requestID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to reach worker at %s", p.endpoint)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

// Close is a no-op; the HTTP client holds no resources worth releasing.
func (p *localHTTPPublisher) Close() error {
	return nil
}

// eventAttributes are the message attributes the worker and subscription
// filters read without decoding the payload.
func eventAttributes(event *service.Event) map[string]string {
	attributes := map[string]string{
		"event_id":   event.ID,
		"event_type": event.Type,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}
	if event.Post != nil && event.Post.Category != "" {
		attributes["category"] = string(event.Post.Category)
	}

	return attributes
}
