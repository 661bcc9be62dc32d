package main

import (
	"context"
	"log/slog"
	"os"

	"inkwell/config"
	"inkwell/internal/delivery"
	"inkwell/internal/delivery/worker"
	"inkwell/internal/delivery/worker/handler"
	"inkwell/internal/domain/service"
	infrafirebase "inkwell/internal/infra/firebase"
	logs "inkwell/internal/infra/log"
	"inkwell/internal/infra/notification"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		infrafirebase.NewLazyApp,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotificationService,
		),
	)
}

// newNotificationService sends through Firebase Cloud Messaging when a
// project is configured and only logs otherwise.
func newNotificationService(ctx context.Context, cfg *config.Config, app *infrafirebase.LazyApp, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		logger.Warn("Firebase is not configured, notifications will only be logged")

		return notification.NewLogService(logger), nil
	}

	firebaseApp, err := app.Get()
	if err != nil {
		return nil, err
	}
	client, err := infrafirebase.NewMessagingClient(ctx, firebaseApp)
	if err != nil {
		return nil, err
	}

	return notification.NewFirebaseService(client, logger), nil
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
