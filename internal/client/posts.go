package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"

	"inkwell/internal/domain/entity"
	"inkwell/internal/usecase"

	"github.com/pkg/errors"
)

// ListRecent returns the newest posts; limit <= 0 uses the server default.
func (c *Client) ListRecent(ctx context.Context, limit int) ([]*entity.Post, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var posts []*entity.Post
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/v1/posts", query: query}, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// ListByCategory returns the posts of one category, newest first.
func (c *Client) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Post, error) {
	if !category.IsValid() {
		return nil, validationError("unknown category " + strconv.Quote(string(category)))
	}

	var posts []*entity.Post
	path := "/api/v1/posts/category/" + url.PathEscape(string(category))
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// ListByAuthor returns the posts whose author display name equals name.
func (c *Client) ListByAuthor(ctx context.Context, name string) ([]*entity.Post, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationError("author name is required")
	}

	var posts []*entity.Post
	query := url.Values{"name": {name}}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/v1/posts/author", query: query}, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// ListMine returns the signed-in user's posts.
func (c *Client) ListMine(ctx context.Context) ([]*entity.Post, error) {
	var posts []*entity.Post
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/v1/me/posts", auth: true}, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetPost fetches one post.
func (c *Client) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	var post entity.Post
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/v1/posts/" + url.PathEscape(id)}, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

// RenderPost fetches one post with its content rendered to HTML.
func (c *Client) RenderPost(ctx context.Context, id string) (*usecase.RenderedPost, error) {
	rendered := usecase.RenderedPost{Post: &entity.Post{}}
	r := request{
		method: http.MethodGet,
		path:   "/api/v1/posts/" + url.PathEscape(id),
		query:  url.Values{"format": {"html"}},
	}
	if err := c.do(ctx, r, &rendered); err != nil {
		return nil, err
	}

	return &rendered, nil
}

// ShareCode returns the PNG QR code linking to a post.
func (c *Client) ShareCode(ctx context.Context, id string) ([]byte, error) {
	return c.raw(ctx, request{method: http.MethodGet, path: "/api/v1/posts/" + url.PathEscape(id) + "/qr"})
}

// CreatePost validates draft locally, then creates it. The author is
// derived server-side from the caller's profile.
func (c *Client) CreatePost(ctx context.Context, draft entity.PostDraft) (*entity.Post, error) {
	switch {
	case strings.TrimSpace(draft.Title) == "":
		return nil, validationError("title is required")
	case strings.TrimSpace(draft.Content) == "":
		return nil, validationError("content is required")
	case !draft.Category.IsValid():
		return nil, validationError("category must be one of the known categories")
	}

	var post entity.Post
	if err := c.do(ctx, request{method: http.MethodPost, path: "/api/v1/posts", body: draft, auth: true}, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

// UpdatePost applies a partial update and returns the stored post.
func (c *Client) UpdatePost(ctx context.Context, id string, patch entity.PostPatch) (*entity.Post, error) {
	var post entity.Post
	r := request{method: http.MethodPatch, path: "/api/v1/posts/" + url.PathEscape(id), body: patch, auth: true}
	if err := c.do(ctx, r, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/api/v1/posts/" + url.PathEscape(id), auth: true}, nil)
}

// UploadImage stores an image and returns the URL to put in a post.
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, data io.Reader) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+escapeQuotes(filename)+`"`)
	header.Set("Content-Type", contentType)
	part, err := form.CreatePart(header)
	if err != nil {
		return "", errors.Wrap(err, "failed to create form part")
	}
	if _, err := io.Copy(part, data); err != nil {
		return "", errors.Wrap(err, "failed to read image")
	}
	if err := form.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close form")
	}

	var out struct {
		URL string `json:"url"`
	}
	r := request{
		method:      http.MethodPost,
		path:        "/api/v1/images",
		rawBody:     &buf,
		contentType: form.FormDataContentType(),
		auth:        true,
	}
	if err := c.do(ctx, r, &out); err != nil {
		return "", err
	}

	return out.URL, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
