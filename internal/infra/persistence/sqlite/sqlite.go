// Package sqlite implements the repositories on an embedded SQLite database
// using sqlx and squirrel. It backs local development and single-node deployments.
package sqlite

import (
	"context"
	"log/slog"

	"inkwell/config"
	"inkwell/internal/domain/lifecycle"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const driverName = "sqlite3"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS posts (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		content    TEXT NOT NULL,
		author     TEXT NOT NULL,
		author_id  TEXT NOT NULL DEFAULT '',
		category   TEXT NOT NULL,
		image_url  TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_author ON posts (author, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts (author_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_category ON posts (category, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at)`,
	`CREATE TABLE IF NOT EXISTS users (
		user_id    TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL,
		email      TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS credentials (
		provider           TEXT NOT NULL,
		subject            TEXT NOT NULL,
		user_id            TEXT NOT NULL,
		password_hash      TEXT NOT NULL DEFAULT '',
		tokens_valid_after TIMESTAMP NOT NULL,
		created_at         TIMESTAMP NOT NULL,
		PRIMARY KEY (provider, subject)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_credentials_user_id ON credentials (user_id)`,
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured SQLite database and closes it on shutdown.
func New(params Params) (*sqlx.DB, error) {
	dsn := params.Config.Persistence.SQLite.DSN

	db, err := Open(context.Background(), dsn)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}
			params.Logger.Info("SQLite store ready", slog.String("dsn", dsn))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

// Open connects to dsn and applies the schema.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite")
	}

	// SQLite serializes writers, and every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()

		return nil, err
	}

	return db, nil
}

func migrate(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin migration")
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to apply schema")
		}
	}

	return errors.Wrap(tx.Commit(), "failed to commit schema")
}
