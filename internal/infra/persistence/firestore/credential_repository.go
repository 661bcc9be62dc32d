package firestore

import (
	"context"
	"time"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/telemetry"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// credentialRepository implements the repository.CredentialRepository interface on the credentials collection.
type credentialRepository struct {
	client  *firestore.Client
	metrics *telemetry.StoreMetrics
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(client *firestore.Client, metrics *telemetry.StoreMetrics) repository.CredentialRepository {
	return &credentialRepository{client: client, metrics: metrics}
}

func (repo *credentialRepository) credentials() *firestore.CollectionRef {
	return repo.client.Collection(credentialsCollection)
}

// Create writes the credential under its provider and subject id.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) (err error) {
	ctx, done := repo.metrics.Observe(ctx, "credentials.create")
	defer func() { done(err) }()

	doc := &credentialDocument{
		UserID:           credential.UserID,
		Provider:         string(credential.Provider),
		Subject:          credential.Subject,
		PasswordHash:     credential.PasswordHash,
		TokensValidAfter: credential.TokensValidAfter.UTC(),
		CreatedAt:        credential.CreatedAt.UTC(),
	}
	if _, err := repo.credentials().Doc(credentialID(credential.Provider, credential.Subject)).Create(ctx, doc); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrDuplicate
		}

		return errors.Wrap(err, "failed to create credential")
	}

	return nil
}

// FindBySubject reads the credential of a provider subject.
func (repo *credentialRepository) FindBySubject(ctx context.Context, provider entity.ProviderType, subject string) (credential *entity.Credential, err error) {
	ctx, done := repo.metrics.Observe(ctx, "credentials.find_by_subject")
	defer func() { done(err) }()

	snap, err := repo.credentials().Doc(credentialID(provider, subject)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to get credential")
	}

	var doc credentialDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode credential")
	}

	return doc.toCredential(), nil
}

// ListByUserID queries every credential of a user.
func (repo *credentialRepository) ListByUserID(ctx context.Context, userID string) (credentials []*entity.Credential, err error) {
	ctx, done := repo.metrics.Observe(ctx, "credentials.list_by_user")
	defer func() { done(err) }()

	snaps, err := repo.credentials().Where("userId", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query credentials")
	}

	credentials = make([]*entity.Credential, 0, len(snaps))
	for _, snap := range snaps {
		var doc credentialDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode credential %s", snap.Ref.ID)
		}
		credentials = append(credentials, doc.toCredential())
	}

	return credentials, nil
}

// RevokeTokens moves the watermark on each credential document of the user.
func (repo *credentialRepository) RevokeTokens(ctx context.Context, userID string, at time.Time) (err error) {
	ctx, done := repo.metrics.Observe(ctx, "credentials.revoke")
	defer func() { done(err) }()

	snaps, err := repo.credentials().Where("userId", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return errors.Wrap(err, "failed to query credentials")
	}

	for _, snap := range snaps {
		if _, err := snap.Ref.Update(ctx, []firestore.Update{{Path: "tokensValidAfter", Value: at.UTC()}}); err != nil {
			return errors.Wrapf(err, "failed to revoke tokens of %s", snap.Ref.ID)
		}
	}

	return nil
}
