// Package persistence selects the store driver behind the repositories.
package persistence

import (
	"context"
	"log/slog"

	"inkwell/config"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/firebase"
	"inkwell/internal/infra/persistence/firestore"
	"inkwell/internal/infra/persistence/postgres"
	"inkwell/internal/infra/persistence/sqlite"
	"inkwell/internal/infra/telemetry"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebase.LazyApp `optional:"true"`
}

// Repositories are the store-backed repositories handed to the use cases.
type Repositories struct {
	fx.Out

	Posts       repository.PostRepository
	Profiles    repository.ProfileRepository
	Credentials repository.CredentialRepository
}

// New opens the configured driver and builds its repositories.
func New(params Params) (Repositories, error) {
	driver := params.Config.Persistence.Driver
	if driver == "" {
		driver = config.DriverSQLite
	}
	metrics := telemetry.NewStoreMetrics(driver, telemetry.NewTracer(), telemetry.NewMeter())
	logger := params.Logger.With(slog.String("driver", driver))

	switch driver {
	case config.DriverSQLite:
		db, err := sqlite.New(sqlite.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: logger})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Posts:       sqlite.NewPostRepository(db, metrics),
			Profiles:    sqlite.NewProfileRepository(db, metrics),
			Credentials: sqlite.NewCredentialRepository(db, metrics),
		}, nil

	case config.DriverPostgres:
		if params.Config.Postgres == nil {
			return Repositories{}, errors.New("postgres config is required for the postgres driver")
		}
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: logger})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Posts:       postgres.NewPostRepository(db),
			Profiles:    postgres.NewProfileRepository(db),
			Credentials: postgres.NewCredentialRepository(db),
		}, nil

	case config.DriverFirestore:
		lazy := params.Firebase
		if lazy == nil {
			lazy = firebase.NewLazyApp(firebase.AppParams{Ctx: params.Ctx, Config: params.Config, Logger: logger})
		}
		app, err := lazy.Get()
		if err != nil {
			return Repositories{}, err
		}
		client, err := firestore.New(firestore.Params{Lifecycle: params.Lifecycle, Ctx: params.Ctx, App: app, Logger: logger})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Posts:       firestore.NewPostRepository(client, metrics),
			Profiles:    firestore.NewProfileRepository(client, metrics),
			Credentials: firestore.NewCredentialRepository(client, metrics),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown persistence driver: %s", driver)
	}
}

// Module provides the repositories FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
