package client

import (
	"context"
	"net/http"
	"strings"

	"inkwell/internal/domain/entity"
)

// CategoryCounts returns the number of posts per category.
func (c *Client) CategoryCounts(ctx context.Context) ([]entity.CategoryCount, error) {
	var counts []entity.CategoryCount
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/v1/analytics/categories"}, &counts); err != nil {
		return nil, err
	}

	return counts, nil
}

// AuthorStats summarizes the signed-in user's posts.
func (c *Client) AuthorStats(ctx context.Context) (*entity.AuthorStats, error) {
	var stats entity.AuthorStats
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/v1/analytics/me", auth: true}, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// ContactInfo returns the contact page details.
func (c *Client) ContactInfo(ctx context.Context) (*entity.ContactInfo, error) {
	var info entity.ContactInfo
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/v1/contact"}, &info); err != nil {
		return nil, err
	}

	return &info, nil
}

// SubmitContact sends a contact form message.
func (c *Client) SubmitContact(ctx context.Context, msg entity.ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.Message) == "" {
		return validationError("name, email and message are required")
	}

	return c.do(ctx, request{method: http.MethodPost, path: "/api/v1/contact", body: msg}, nil)
}
