// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"inkwell/config"
	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/constants"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	"inkwell/internal/usecase"
	"inkwell/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const imageKeyPrefix = "posts"

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// postService implements the PostUsecase interface.
type postService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
	images      service.ImageStore
	publisher   service.EventPublisher
	qrcode      service.QRCodeService
	markdown    service.MarkdownRenderer

	tracer     trace.Tracer
	operations metric.Int64Counter

	feedDefault   int
	feedMax       int
	maxImageBytes int64
	publicBaseURL string

	logger *slog.Logger
	now    func() time.Time
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	PostRepo    repository.PostRepository
	ProfileRepo repository.ProfileRepository
	ImageStore  service.ImageStore `optional:"true"`
	Publisher   service.EventPublisher
	QRCode      service.QRCodeService
	Markdown    service.MarkdownRenderer
	Tracer      trace.Tracer
	Meter       metric.Meter
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) (usecase.PostUsecase, error) {
	operations, err := params.Meter.Int64Counter("inkwell.posts.operations",
		metric.WithDescription("Post facade operations by outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create post operations counter")
	}

	srv := &postService{
		postRepo:    params.PostRepo,
		profileRepo: params.ProfileRepo,
		images:      params.ImageStore,
		publisher:   params.Publisher,
		qrcode:      params.QRCode,
		markdown:    params.Markdown,
		tracer:      params.Tracer,
		operations:  operations,
		logger:      params.Logger,
		now:         time.Now,
	}

	if cfg := params.Config; cfg != nil {
		if cfg.Feed != nil {
			srv.feedDefault = cfg.Feed.DefaultLimit
			srv.feedMax = cfg.Feed.MaxLimit
		}
		if cfg.Storage != nil {
			srv.maxImageBytes = cfg.Storage.MaxImageBytes
		}
		srv.publicBaseURL = strings.TrimRight(cfg.HTTP.PublicBaseURL, "/")
	}
	if srv.feedDefault <= 0 {
		srv.feedDefault = 3
	}
	if srv.feedMax < srv.feedDefault {
		srv.feedMax = srv.feedDefault
	}
	if srv.maxImageBytes <= 0 {
		srv.maxImageBytes = 5 << 20
	}

	return srv, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// observe opens a span for operation and returns a finisher that records the outcome.
func (srv *postService) observe(ctx context.Context, operation string) (context.Context, func(*error)) {
	ctx, span := srv.tracer.Start(ctx, "posts."+operation)

	return ctx, func(errp *error) {
		outcome := "ok"
		if errp != nil && *errp != nil {
			outcome = outcomeOf(*errp)
			span.RecordError(*errp)
			span.SetStatus(codes.Error, outcome)
		}
		srv.operations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("outcome", outcome),
		))
		span.End()
	}
}

func (srv *postService) ListRecent(ctx context.Context, limit int) (posts []*entity.Post, err error) {
	ctx, done := srv.observe(ctx, "list_recent")
	defer done(&err)

	if limit <= 0 {
		limit = srv.feedDefault
	}
	if limit > srv.feedMax {
		limit = srv.feedMax
	}

	posts, err = srv.postRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, srv.mapRepoError(err, "list recent posts")
	}

	return nonNil(posts), nil
}

func (srv *postService) ListByCategory(ctx context.Context, category string) (posts []*entity.Post, err error) {
	ctx, done := srv.observe(ctx, "list_by_category")
	defer done(&err)

	c := entity.Category(category)
	if !c.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidCategory.WithDetails(
			fmt.Sprintf("%q is not one of %s", category, joinCategories()),
		))
	}

	posts, err = srv.postRepo.ListByCategory(ctx, c)
	if err != nil {
		return nil, srv.mapRepoError(err, "list posts by category")
	}

	return nonNil(posts), nil
}

func (srv *postService) ListByAuthor(ctx context.Context, author string) (posts []*entity.Post, err error) {
	ctx, done := srv.observe(ctx, "list_by_author")
	defer done(&err)

	author = strings.TrimSpace(author)
	if author == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("author name is required"))
	}

	posts, err = srv.postRepo.ListByAuthor(ctx, author)
	if err != nil {
		return nil, srv.mapRepoError(err, "list posts by author")
	}

	return nonNil(posts), nil
}

func (srv *postService) ListMine(ctx context.Context, identity *entity.Identity) (posts []*entity.Post, err error) {
	ctx, done := srv.observe(ctx, "list_mine")
	defer done(&err)

	if identity == nil || identity.UserID == "" {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	posts, err = srv.postRepo.ListByAuthorID(ctx, identity.UserID)
	if err != nil {
		return nil, srv.mapRepoError(err, "list own posts")
	}

	return nonNil(posts), nil
}

func (srv *postService) Get(ctx context.Context, id string) (post *entity.Post, err error) {
	ctx, done := srv.observe(ctx, "get")
	defer done(&err)

	return srv.find(ctx, id)
}

func (srv *postService) Render(ctx context.Context, id string) (rendered *usecase.RenderedPost, err error) {
	ctx, done := srv.observe(ctx, "render")
	defer done(&err)

	post, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	html, err := srv.markdown.Render(post.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render post content")
	}

	return &usecase.RenderedPost{Post: post, HTML: html}, nil
}

func (srv *postService) Create(ctx context.Context, identity *entity.Identity, draft *entity.PostDraft) (post *entity.Post, err error) {
	ctx, done := srv.observe(ctx, "create")
	defer done(&err)

	if identity == nil || identity.UserID == "" {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}
	if vErr := validateDraft(draft); vErr != nil {
		return nil, vErr
	}

	post = &entity.Post{
		Title:     strings.TrimSpace(draft.Title),
		Content:   draft.Content,
		Author:    srv.resolveAuthor(ctx, identity, draft.Author),
		AuthorID:  identity.UserID,
		Category:  draft.Category,
		ImageURL:  strings.TrimSpace(draft.ImageURL),
		CreatedAt: srv.now().UTC(),
	}

	id, err := srv.postRepo.Create(ctx, post)
	if err != nil {
		return nil, srv.mapRepoError(err, "create post")
	}
	post.ID = id

	srv.log(ctx).Info("Post created",
		slog.String("post_id", id),
		slog.String("author_id", identity.UserID),
		slog.String("category", post.Category.String()),
	)
	srv.publish(ctx, constants.EventPostCreated, post)

	return post, nil
}

func (srv *postService) Update(ctx context.Context, identity *entity.Identity, id string, patch entity.PostPatch) (post *entity.Post, err error) {
	ctx, done := srv.observe(ctx, "update")
	defer done(&err)

	if identity == nil || identity.UserID == "" {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}
	patch, vErr := normalizePatch(patch)
	if vErr != nil {
		return nil, vErr
	}

	post, err = srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !srv.owns(ctx, identity, post) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "update post")
	}

	previousImage := post.ImageURL
	updatedAt := srv.now().UTC()
	if err := srv.postRepo.Update(ctx, post.ID, patch, updatedAt); err != nil {
		return nil, srv.mapRepoError(err, "update post")
	}

	patch.Apply(post)
	post.UpdatedAt = &updatedAt

	if previousImage != post.ImageURL {
		srv.deleteImage(ctx, previousImage)
	}

	srv.log(ctx).Info("Post updated", slog.String("post_id", post.ID))
	srv.publish(ctx, constants.EventPostUpdated, post)

	return post, nil
}

func (srv *postService) Remove(ctx context.Context, identity *entity.Identity, id string) (err error) {
	ctx, done := srv.observe(ctx, "remove")
	defer done(&err)

	if identity == nil || identity.UserID == "" {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	post, err := srv.find(ctx, id)
	if err != nil {
		return err
	}
	if !srv.owns(ctx, identity, post) {
		return errors.Wrap(domainerrors.ErrForbidden, "remove post")
	}

	if err := srv.postRepo.Delete(ctx, post.ID); err != nil {
		return srv.mapRepoError(err, "remove post")
	}

	srv.deleteImage(ctx, post.ImageURL)

	srv.log(ctx).Info("Post removed", slog.String("post_id", post.ID))
	srv.publish(ctx, constants.EventPostDeleted, post)

	return nil
}

func (srv *postService) UploadImage(ctx context.Context, identity *entity.Identity, upload *service.ImageUpload) (imageURL string, err error) {
	ctx, done := srv.observe(ctx, "upload_image")
	defer done(&err)

	if identity == nil || identity.UserID == "" {
		return "", errors.WithStack(domainerrors.ErrAuthRequired)
	}
	if srv.images == nil {
		return "", errors.WithStack(domainerrors.ErrBackendUnavailable.WithDetails("image storage is not configured"))
	}
	if upload == nil || upload.Body == nil {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("image file is required"))
	}

	tooLarge := domainerrors.ErrImageTooLarge.WithDetails("limit is " + util.FormatBytes(srv.maxImageBytes))
	if upload.Size > srv.maxImageBytes {
		return "", errors.WithStack(tooLarge)
	}

	data, err := io.ReadAll(io.LimitReader(upload.Body, srv.maxImageBytes+1))
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("image could not be read"), err.Error())
	}
	if int64(len(data)) > srv.maxImageBytes {
		return "", errors.WithStack(tooLarge)
	}

	contentType := mediaType(upload.ContentType)
	ext, ok := imageExtensions[contentType]
	sniffed := mediaType(http.DetectContentType(data))
	if !ok || sniffed != contentType {
		return "", errors.WithStack(domainerrors.ErrUnsupportedImage.WithDetails(
			fmt.Sprintf("declared %q, detected %q", upload.ContentType, sniffed),
		))
	}

	key := path.Join(imageKeyPrefix, identity.UserID, uuid.NewString()+ext)
	imageURL, err = srv.images.Put(ctx, key, &service.ImageUpload{
		Filename:    upload.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	})
	if err != nil {
		return "", errors.WithStack(domainerrors.NewBackendError(err, "store image"))
	}

	srv.log(ctx).Info("Image uploaded",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return imageURL, nil
}

func (srv *postService) OpenImage(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if srv.images == nil || strings.TrimSpace(key) == "" {
		return nil, "", errors.WithStack(domainerrors.ErrNotFound)
	}

	body, contentType, err := srv.images.Open(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			return nil, "", errors.Wrap(domainerrors.ErrNotFound, "open image")
		}

		return nil, "", errors.WithStack(domainerrors.NewBackendError(err, "open image"))
	}

	return body, contentType, nil
}

func (srv *postService) ShareCode(ctx context.Context, id string) (png []byte, err error) {
	ctx, done := srv.observe(ctx, "share_code")
	defer done(&err)

	post, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	link := srv.publicBaseURL + "/posts/" + url.PathEscape(post.ID)
	png, err = srv.qrcode.GenerateShareQR(link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share code")
	}

	return png, nil
}

func (srv *postService) find(ctx context.Context, id string) (*entity.Post, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("post id is required"))
	}

	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.mapRepoError(err, "find post")
	}

	return post, nil
}

// owns checks ownership by user id. Posts written before ids were recorded fall back to the display name.
func (srv *postService) owns(ctx context.Context, identity *entity.Identity, post *entity.Post) bool {
	if post.AuthorID != "" {
		return post.IsOwnedBy(identity.UserID)
	}

	name := srv.resolveAuthor(ctx, identity, "")

	return name != entity.AnonymousAuthor && name == post.Author
}

// resolveAuthor picks the profile name, then the identity display name, then the fallback.
func (srv *postService) resolveAuthor(ctx context.Context, identity *entity.Identity, fallback string) string {
	profile, err := srv.profileRepo.FindByUserID(ctx, identity.UserID)
	switch {
	case err == nil:
		if name := profile.DisplayName(); name != "" {
			return name
		}
	case errors.Is(err, repository.ErrProfileNotFound):
	default:
		srv.log(ctx).Warn("Failed to load profile for author name",
			slog.String("user_id", identity.UserID),
			slog.Any("error", err),
		)
	}

	if name := strings.TrimSpace(identity.DisplayName); name != "" {
		return name
	}
	if name := strings.TrimSpace(fallback); name != "" {
		return name
	}

	return entity.AnonymousAuthor
}

func (srv *postService) deleteImage(ctx context.Context, imageURL string) {
	if srv.images == nil || imageURL == "" {
		return
	}

	key, ok := srv.images.KeyFromURL(imageURL)
	if !ok {
		return
	}

	if err := srv.images.Delete(ctx, key); err != nil && !errors.Is(err, service.ErrImageNotFound) {
		srv.log(ctx).Warn("Failed to delete post image", slog.String("key", key), slog.Any("error", err))
	}
}

func (srv *postService) publish(ctx context.Context, eventType string, post *entity.Post) {
	event := &service.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		OccurredAt: srv.now().UTC(),
		Post:       post,
	}

	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish post event",
			slog.String("type", eventType),
			slog.String("post_id", post.ID),
			slog.Any("error", err),
		)
	}
}

func (srv *postService) mapRepoError(err error, op string) error {
	if errors.Is(err, repository.ErrPostNotFound) {
		return errors.Wrap(domainerrors.ErrPostNotFound, op)
	}

	return errors.WithStack(domainerrors.NewBackendError(err, op))
}

func validateDraft(draft *entity.PostDraft) error {
	if draft == nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("All fields except Image URL are required"))
	}

	var missing []string
	if strings.TrimSpace(draft.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(draft.Content) == "" {
		missing = append(missing, "content")
	}
	if strings.TrimSpace(string(draft.Category)) == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			"All fields except Image URL are required (missing " + strings.Join(missing, ", ") + ")",
		))
	}

	if !draft.Category.IsValid() {
		return errors.WithStack(domainerrors.ErrInvalidCategory.WithDetails(
			fmt.Sprintf("%q is not one of %s", draft.Category, joinCategories()),
		))
	}

	return nil
}

func normalizePatch(patch entity.PostPatch) (entity.PostPatch, error) {
	if patch.IsEmpty() {
		return patch, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("nothing to update"))
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return patch, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("title cannot be empty"))
		}
		patch.Title = &title
	}
	if patch.Content != nil && strings.TrimSpace(*patch.Content) == "" {
		return patch, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("content cannot be empty"))
	}
	if patch.ImageURL != nil {
		imageURL := strings.TrimSpace(*patch.ImageURL)
		patch.ImageURL = &imageURL
	}

	return patch, nil
}

func joinCategories() string {
	categories := entity.AllCategories()
	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = c.String()
	}

	return strings.Join(labels, ", ")
}

func mediaType(contentType string) string {
	parsed, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}

	return parsed
}

// outcomeOf labels an error for metrics.
func outcomeOf(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return strings.ToLower(appErr.ErrorCode())
	}

	return "error"
}

func nonNil(posts []*entity.Post) []*entity.Post {
	if posts == nil {
		return []*entity.Post{}
	}

	return posts
}
