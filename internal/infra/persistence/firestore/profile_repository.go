package firestore

import (
	"context"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/telemetry"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// profileRepository implements the repository.ProfileRepository interface on users/{uid}.
type profileRepository struct {
	client  *firestore.Client
	metrics *telemetry.StoreMetrics
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client, metrics *telemetry.StoreMetrics) repository.ProfileRepository {
	return &profileRepository{client: client, metrics: metrics}
}

// FindByUserID reads users/{uid}.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID string) (profile *entity.Profile, err error) {
	ctx, done := repo.metrics.Observe(ctx, "users.find")
	defer func() { done(err) }()

	snap, err := repo.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	var doc profileDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile")
	}

	return doc.toProfile(userID), nil
}

// Create writes users/{uid}, failing when it already exists.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) (err error) {
	ctx, done := repo.metrics.Observe(ctx, "users.create")
	defer func() { done(err) }()

	doc := &profileDocument{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		CreatedAt: profile.CreatedAt.UTC(),
	}
	if _, err := repo.client.Collection(usersCollection).Doc(profile.UserID).Create(ctx, doc); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrDuplicate
		}

		return errors.Wrap(err, "failed to create profile")
	}

	return nil
}

// Update overwrites the name and email fields of users/{uid}.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) (err error) {
	ctx, done := repo.metrics.Observe(ctx, "users.update")
	defer func() { done(err) }()

	_, err = repo.client.Collection(usersCollection).Doc(profile.UserID).Update(ctx, []firestore.Update{
		{Path: "firstName", Value: profile.FirstName},
		{Path: "lastName", Value: profile.LastName},
		{Path: "email", Value: profile.Email},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update profile")
	}

	return nil
}
