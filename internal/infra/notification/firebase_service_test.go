package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/p/messages/1", nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseService_SendToTopic(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender, logger: discardLogger()}

	err := svc.SendToTopic(context.Background(), "posts-tech", "New post", "Hello", map[string]string{"postId": "p1"})

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "posts-tech", sender.sent[0].Topic)
	assert.Equal(t, "New post", sender.sent[0].Notification.Title)
	assert.Equal(t, "p1", sender.sent[0].Data["postId"])
}

func TestFirebaseService_SendToTopic_Errors(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{err: errors.New("boom")}, logger: discardLogger()}

	assert.Error(t, svc.SendToTopic(context.Background(), "posts-tech", "t", "b", nil))
	assert.Error(t, svc.SendToTopic(context.Background(), "bad topic!", "t", "b", nil))
}

func TestLogService_SendToTopic(t *testing.T) {
	svc := NewLogService(discardLogger())

	assert.NoError(t, svc.SendToTopic(context.Background(), "contact", "t", "b", nil))
}
