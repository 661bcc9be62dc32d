package sqlite

import (
	"context"
	"database/sql"
	"time"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/persistence/model"
	"inkwell/internal/infra/telemetry"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const credentialsTable = "credentials"

var credentialColumns = []string{"provider", "subject", "user_id", "password_hash", "tokens_valid_after", "created_at"}

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db      *sqlx.DB
	metrics *telemetry.StoreMetrics
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *sqlx.DB, metrics *telemetry.StoreMetrics) repository.CredentialRepository {
	return &credentialRepository{db: db, metrics: metrics}
}

// Create inserts a credential.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) (err error) {
	ctx, done := repo.metrics.Observe(ctx, "credentials.create")
	defer func() { done(err) }()

	row := model.FromCredentialDomain(credential)
	query, args, err := sq.Insert(credentialsTable).
		Columns(credentialColumns...).
		Values(row.Provider, row.Subject, row.UserID, row.PasswordHash, row.TokensValidAfter, row.CreatedAt).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build insert")
	}

	if _, err := repo.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicate
		}

		return errors.Wrap(err, "failed to create credential")
	}

	return nil
}

// FindBySubject retrieves the credential of a provider subject.
func (repo *credentialRepository) FindBySubject(ctx context.Context, provider entity.ProviderType, subject string) (credential *entity.Credential, err error) {
	ctx, done := repo.metrics.Observe(ctx, "credentials.find_by_subject")
	defer func() { done(err) }()

	query, args, err := sq.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"provider": string(provider), "subject": subject}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	var row model.CredentialModel
	if err := repo.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return row.ToDomain(), nil
}

// ListByUserID retrieves every credential of a user.
func (repo *credentialRepository) ListByUserID(ctx context.Context, userID string) (credentials []*entity.Credential, err error) {
	ctx, done := repo.metrics.Observe(ctx, "credentials.list_by_user")
	defer func() { done(err) }()

	query, args, err := sq.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	var rows []*model.CredentialModel
	if err := repo.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list credentials")
	}

	credentials = make([]*entity.Credential, 0, len(rows))
	for _, row := range rows {
		credentials = append(credentials, row.ToDomain())
	}

	return credentials, nil
}

// RevokeTokens moves the revocation watermark of every credential of a user.
func (repo *credentialRepository) RevokeTokens(ctx context.Context, userID string, at time.Time) (err error) {
	ctx, done := repo.metrics.Observe(ctx, "credentials.revoke")
	defer func() { done(err) }()

	query, args, err := sq.Update(credentialsTable).
		Set("tokens_valid_after", at.UTC()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build update")
	}

	if _, err := repo.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "failed to revoke tokens")
	}

	return nil
}
