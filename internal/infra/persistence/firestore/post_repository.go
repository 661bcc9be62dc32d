package firestore

import (
	"context"
	"time"

	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/telemetry"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/pkg/errors"
)

// postRepository implements the repository.PostRepository interface on the posts collection.
type postRepository struct {
	client  *firestore.Client
	metrics *telemetry.StoreMetrics
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(client *firestore.Client, metrics *telemetry.StoreMetrics) repository.PostRepository {
	return &postRepository{client: client, metrics: metrics}
}

func (repo *postRepository) posts() *firestore.CollectionRef {
	return repo.client.Collection(postsCollection)
}

// FindByID retrieves a post document.
func (repo *postRepository) FindByID(ctx context.Context, id string) (post *entity.Post, err error) {
	ctx, done := repo.metrics.Observe(ctx, "posts.find_by_id")
	defer func() { done(err) }()

	snap, err := repo.posts().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to get post")
	}

	var doc postDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode post")
	}

	return doc.toPost(snap.Ref.ID), nil
}

// ListByAuthor queries posts whose author equals author.
func (repo *postRepository) ListByAuthor(ctx context.Context, author string) ([]*entity.Post, error) {
	return repo.list(ctx, "posts.list_by_author", repo.posts().Where("author", "==", author).OrderBy("createdAt", firestore.Desc))
}

// ListByAuthorID queries posts created by a user.
func (repo *postRepository) ListByAuthorID(ctx context.Context, authorID string) ([]*entity.Post, error) {
	return repo.list(ctx, "posts.list_by_author_id", repo.posts().Where("authorId", "==", authorID).OrderBy("createdAt", firestore.Desc))
}

// ListByCategory queries posts of one category.
func (repo *postRepository) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Post, error) {
	return repo.list(ctx, "posts.list_by_category", repo.posts().Where("category", "==", string(category)).OrderBy("createdAt", firestore.Desc))
}

// ListRecent queries the newest posts.
func (repo *postRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Post, error) {
	return repo.list(ctx, "posts.list_recent", repo.posts().OrderBy("createdAt", firestore.Desc).Limit(limit))
}

func (repo *postRepository) list(ctx context.Context, operation string, query firestore.Query) (posts []*entity.Post, err error) {
	ctx, done := repo.metrics.Observe(ctx, operation)
	defer func() { done(err) }()

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query posts")
	}

	posts = make([]*entity.Post, 0, len(snaps))
	for _, snap := range snaps {
		var doc postDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode post %s", snap.Ref.ID)
		}
		posts = append(posts, doc.toPost(snap.Ref.ID))
	}

	return posts, nil
}

// Create adds a document with a store-assigned id.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) (id string, err error) {
	ctx, done := repo.metrics.Observe(ctx, "posts.create")
	defer func() { done(err) }()

	ref, _, err := repo.posts().Add(ctx, fromPost(post))
	if err != nil {
		return "", errors.Wrap(err, "failed to add post")
	}

	return ref.ID, nil
}

// Update overwrites the patched fields. Firestore rejects updates of missing documents.
func (repo *postRepository) Update(ctx context.Context, id string, patch entity.PostPatch, updatedAt time.Time) (err error) {
	ctx, done := repo.metrics.Observe(ctx, "posts.update")
	defer func() { done(err) }()

	if _, err := repo.posts().Doc(id).Update(ctx, postUpdates(patch, updatedAt)); err != nil {
		if isNotFound(err) {
			return repository.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to update post")
	}

	return nil
}

// Delete removes the document, failing when it does not exist.
func (repo *postRepository) Delete(ctx context.Context, id string) (err error) {
	ctx, done := repo.metrics.Observe(ctx, "posts.delete")
	defer func() { done(err) }()

	if _, err := repo.posts().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to delete post")
	}

	return nil
}

// CountByCategory runs one server-side count aggregation per category.
func (repo *postRepository) CountByCategory(ctx context.Context) (counts map[entity.Category]int, err error) {
	ctx, done := repo.metrics.Observe(ctx, "posts.count_by_category")
	defer func() { done(err) }()

	counts = make(map[entity.Category]int)
	for _, category := range entity.AllCategories() {
		query := repo.posts().Where("category", "==", string(category))
		result, err := query.NewAggregationQuery().WithCount("count").Get(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to count %s posts", category)
		}

		value, ok := result["count"].(*firestorepb.Value)
		if !ok {
			return nil, errors.Errorf("unexpected count result for %s", category)
		}
		counts[category] = int(value.GetIntegerValue())
	}

	return counts, nil
}
