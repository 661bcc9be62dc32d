package main

import (
	"context"
	"log/slog"
	"os"

	"inkwell/config"
	"inkwell/internal/delivery"
	"inkwell/internal/delivery/api"
	"inkwell/internal/delivery/api/middleware"
	"inkwell/internal/delivery/api/router/handler"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	"inkwell/internal/infra/auth"
	"inkwell/internal/infra/auth/firebaseauth"
	"inkwell/internal/infra/auth/google"
	infrafirebase "inkwell/internal/infra/firebase"
	logs "inkwell/internal/infra/log"
	"inkwell/internal/infra/markdown"
	"inkwell/internal/infra/persistence"
	"inkwell/internal/infra/pubsub"
	"inkwell/internal/infra/qrcode"
	"inkwell/internal/infra/storage"
	"inkwell/internal/infra/telemetry"
	"inkwell/internal/usecase/impl"

	"github.com/pkg/errors"
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
		persistence.Module,
		storage.Module,
		pubsub.Module,
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		telemetry.NewTracer,
		telemetry.NewMeter,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			google.NewVerifier,
			google.NewOAuthService,
			newIdentityProvider,
			qrcode.NewFromConfig,
			markdown.NewRenderer,
		),
	)
}

type identityProviderParams struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	Firebase    *infrafirebase.LazyApp
	Credentials repository.CredentialRepository
	Federated   service.FederatedVerifier `optional:"true"`
}

// newIdentityProvider selects the identity provider named by auth.provider.
func newIdentityProvider(params identityProviderParams) (service.IdentityProvider, error) {
	provider := config.AuthProviderLocal
	if params.Config.Auth != nil && params.Config.Auth.Provider != "" {
		provider = params.Config.Auth.Provider
	}
	params.Logger.Info("Using identity provider", slog.String("provider", provider))

	switch provider {
	case config.AuthProviderFirebase:
		app, err := params.Firebase.Get()
		if err != nil {
			return nil, err
		}
		client, err := infrafirebase.NewAuthClient(params.Ctx, app)
		if err != nil {
			return nil, err
		}

		return firebaseauth.NewProvider(firebaseauth.ProviderParams{
			Config: params.Config,
			Client: client,
			Logger: params.Logger,
		})

	case config.AuthProviderLocal:
		tokens, err := auth.NewJWTService(params.Config)
		if err != nil {
			return nil, err
		}

		return auth.NewLocalProvider(auth.LocalProviderParams{
			Credentials: params.Credentials,
			Hasher:      auth.NewBcryptHasher(params.Config),
			Tokens:      tokens,
			Federated:   params.Federated,
			Logger:      params.Logger,
		}), nil

	default:
		return nil, errors.Errorf("unknown auth provider: %s", provider)
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPostService,
			impl.NewProfileService,
			impl.NewAnalyticsService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPostHandler,
			handler.NewImageHandler,
			handler.NewProfileHandler,
			handler.NewAnalyticsHandler,
			handler.NewContactHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
