package sqlite

import (
	"context"
	"database/sql"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/persistence/model"
	"inkwell/internal/infra/telemetry"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const usersTable = "users"

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db      *sqlx.DB
	metrics *telemetry.StoreMetrics
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *sqlx.DB, metrics *telemetry.StoreMetrics) repository.ProfileRepository {
	return &profileRepository{db: db, metrics: metrics}
}

// FindByUserID retrieves the profile of a user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID string) (profile *entity.Profile, err error) {
	ctx, done := repo.metrics.Observe(ctx, "users.find")
	defer func() { done(err) }()

	query, args, err := sq.Select("user_id", "first_name", "last_name", "email", "created_at").
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	var row model.ProfileModel
	if err := repo.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return row.ToDomain(), nil
}

// Create inserts the profile row of a new user.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) (err error) {
	ctx, done := repo.metrics.Observe(ctx, "users.create")
	defer func() { done(err) }()

	row := model.FromProfileDomain(profile)
	query, args, err := sq.Insert(usersTable).
		Columns("user_id", "first_name", "last_name", "email", "created_at").
		Values(row.UserID, row.FirstName, row.LastName, row.Email, row.CreatedAt).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build insert")
	}

	if _, err := repo.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicate
		}

		return errors.Wrap(err, "failed to create profile")
	}

	return nil
}

// Update overwrites the name and email of a profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) (err error) {
	ctx, done := repo.metrics.Observe(ctx, "users.update")
	defer func() { done(err) }()

	query, args, err := sq.Update(usersTable).
		SetMap(map[string]any{
			"first_name": profile.FirstName,
			"last_name":  profile.LastName,
			"email":      profile.Email,
		}).
		Where(sq.Eq{"user_id": profile.UserID}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build update")
	}

	result, err := repo.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to update profile")
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}
