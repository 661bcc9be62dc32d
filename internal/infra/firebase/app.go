// Package firebase initializes the Firebase app shared by the document store,
// the BaaS identity provider and push notifications.
package firebase

import (
	"context"
	"log/slog"
	"sync"

	"inkwell/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// AppParams holds dependencies for the Firebase app, injected by Fx.
type AppParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app from the firebase config section.
func NewApp(params AppParams) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase.projectId is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

	return app, nil
}

// NewAuthClient returns the Firebase Auth admin client.
func NewAuthClient(ctx context.Context, app *firebase.App) (*auth.Client, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}

// NewMessagingClient returns the Firebase Cloud Messaging client.
func NewMessagingClient(ctx context.Context, app *firebase.App) (*messaging.Client, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return client, nil
}

// LazyApp initializes the Firebase app on first use so processes that never
// touch Firebase do not need its configuration.
type LazyApp struct {
	params AppParams

	once sync.Once
	app  *firebase.App
	err  error
}

// NewLazyApp defers NewApp until Get is called.
func NewLazyApp(params AppParams) *LazyApp {
	return &LazyApp{params: params}
}

// Get returns the shared app, initializing it once.
func (l *LazyApp) Get() (*firebase.App, error) {
	l.once.Do(func() {
		l.app, l.err = NewApp(l.params)
	})

	return l.app, l.err
}
