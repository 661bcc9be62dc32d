package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/config"
	"inkwell/internal/domain/constants"
	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.Event{
		ID:         "evt-1",
		Type:       constants.EventPostCreated,
		RequestID:  "req-1",
		OccurredAt: time.Now().UTC(),
		Post:       &entity.Post{ID: "p1", Title: "Hello", Category: entity.CategoryTech},
	}

	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, constants.EventPostCreated, received.Message.Attributes["event_type"])
	assert.Equal(t, "Tech", received.Message.Attributes["category"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.Event
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "p1", decoded.Post.ID)
}

func TestLocalHTTPPublisher_RetriesUnavailableWorker(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
	publisher.backoff = time.Millisecond

	require.NoError(t, publisher.Publish(context.Background(), &service.Event{ID: "evt-1", Type: constants.EventContactSubmitted}))
	assert.Equal(t, 2, calls)
}

func TestLocalHTTPPublisher_GivesUp(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
	publisher.backoff = time.Millisecond

	assert.Error(t, publisher.Publish(context.Background(), &service.Event{ID: "evt-1", Type: constants.EventPostCreated}))
	assert.Equal(t, localMaxAttempts, calls)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.Publish(context.Background(), &service.Event{ID: "evt-1", Type: constants.EventPostDeleted})
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured uses noop", pubsub: nil},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)

			if tt.pubsub == nil {
				assert.NoError(t, publisher.Publish(context.Background(), &service.Event{ID: "e", Type: constants.EventPostDeleted}))
			}
		})
	}
}

type recordingPublisher struct {
	events []*service.Event
	err    error
	closed bool
}

func (p *recordingPublisher) Publish(_ context.Context, event *service.Event) error {
	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error {
	p.closed = true

	return nil
}

func TestInstrumentedPublisher(t *testing.T) {
	inner := &recordingPublisher{}
	publisher := instrument(inner, constants.PubSubProviderLocal, nil, nil)

	event := &service.Event{ID: "evt-1", Type: constants.EventPostUpdated}
	require.NoError(t, publisher.Publish(context.Background(), event))
	assert.Equal(t, []*service.Event{event}, inner.events)

	inner.err = assert.AnError
	assert.ErrorIs(t, publisher.Publish(context.Background(), event), assert.AnError)

	require.NoError(t, publisher.Close())
	assert.True(t, inner.closed)
}

func TestOrderingKey(t *testing.T) {
	assert.Equal(t, "post/p1", orderingKey(&service.Event{Post: &entity.Post{ID: "p1"}}))
	assert.Empty(t, orderingKey(&service.Event{Contact: &entity.ContactMessage{}}))
}
