package firebase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inkwell/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_RequiresProjectID(t *testing.T) {
	_, err := NewApp(AppParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projectId")
}

func TestLazyApp_InitializesOnce(t *testing.T) {
	lazy := NewLazyApp(AppParams{
		Ctx:    context.Background(),
		Config: &config.Config{Firebase: &config.FirebaseConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, first := lazy.Get()
	_, second := lazy.Get()
	require.Error(t, first)
	assert.Same(t, first, second)
}
