package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"inkwell/internal/delivery/api/response"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/service"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler serves the post endpoints.
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// CreatePostRequest is the create form of the dashboard.
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"omitempty,max=2048"`
	Author   string `json:"author" validate:"omitempty,max=200"`
}

// UpdatePostRequest is the edit form. Omitted fields are left untouched.
type UpdatePostRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=200"`
	Content  *string `json:"content"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,max=2048"`
}

// ListRecent handles GET /api/v1/posts?limit=
func (h *PostHandler) ListRecent(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequestWithDetails(c,
				domainerrors.ErrValidationFailed.ErrorCode(),
				domainerrors.ErrValidationFailed.Message(),
				"limit must be a non-negative integer",
			)
		}
		limit = parsed
	}

	posts, err := h.postUC.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts)
}

// ListByCategory handles GET /api/v1/posts/category/:category
func (h *PostHandler) ListByCategory(c echo.Context) error {
	posts, err := h.postUC.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts)
}

// ListByAuthor handles GET /api/v1/posts/author?name=
func (h *PostHandler) ListByAuthor(c echo.Context) error {
	posts, err := h.postUC.ListByAuthor(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts)
}

// ListMine handles GET /api/v1/me/posts
func (h *PostHandler) ListMine(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	posts, err := h.postUC.ListMine(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts)
}

// Get handles GET /api/v1/posts/:id. format=html adds the rendered body.
func (h *PostHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if strings.EqualFold(c.QueryParam("format"), "html") {
		rendered, err := h.postUC.Render(ctx, id)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, rendered)
	}

	post, err := h.postUC.Get(ctx, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post)
}

// ShareCode handles GET /api/v1/posts/:id/qr
func (h *PostHandler) ShareCode(c echo.Context) error {
	png, err := h.postUC.ShareCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// Create handles POST /api/v1/posts
func (h *PostHandler) Create(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreatePostRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	post, err := h.postUC.Create(c.Request().Context(), identity, &entity.PostDraft{
		Title:    req.Title,
		Content:  req.Content,
		Category: entity.Category(req.Category),
		ImageURL: req.ImageURL,
		Author:   req.Author,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, post)
}

// Update handles PATCH /api/v1/posts/:id
func (h *PostHandler) Update(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePostRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	post, err := h.postUC.Update(c.Request().Context(), identity, c.Param("id"), entity.PostPatch{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post)
}

// Remove handles DELETE /api/v1/posts/:id
func (h *PostHandler) Remove(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.postUC.Remove(c.Request().Context(), identity, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// ImageHandler uploads post images and serves them back.
type ImageHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// Upload handles POST /api/v1/images with a multipart "image" field.
func (h *ImageHandler) Upload(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.HandleAppError(c, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("multipart field \"image\" is required")))
	}

	file, err := header.Open()
	if err != nil {
		return response.HandleAppError(c, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("image could not be read")))
	}
	defer file.Close()

	imageURL, err := h.postUC.UploadImage(c.Request().Context(), identity, &service.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": imageURL})
}

// Serve handles GET /images/*
func (h *ImageHandler) Serve(c echo.Context) error {
	body, contentType, err := h.postUC.OpenImage(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer body.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")

	return c.Stream(http.StatusOK, contentType, body)
}
