package entity

import (
	"strings"
	"time"
	"unicode/utf8"
)

// AnonymousAuthor is used when no display name can be resolved for the creator.
const AnonymousAuthor = "Anonymous"

// Post is a blog entry. ID and CreatedAt are assigned once and never change.
type Post struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	AuthorID string   `json:"authorId"`
	Category Category `json:"category"`
	ImageURL string   `json:"imageUrl,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// IsOwnedBy reports whether userID created the post.
func (p *Post) IsOwnedBy(userID string) bool {
	return p.AuthorID != "" && p.AuthorID == userID
}

// Excerpt returns the first n runes of the content followed by an ellipsis when truncated.
func (p *Post) Excerpt(n int) string {
	content := strings.TrimSpace(p.Content)
	if utf8.RuneCountInString(content) <= n {
		return content
	}

	runes := []rune(content)

	return string(runes[:n]) + "..."
}

// PostDraft carries the caller-supplied fields of a new post.
type PostDraft struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
	ImageURL string   `json:"imageUrl,omitempty"`
	// Author is only honoured when no name can be derived from the caller's profile.
	Author string `json:"author,omitempty"`
}

// PostPatch is a partial update. Nil fields are left untouched.
type PostPatch struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p PostPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.ImageURL == nil
}

// Apply writes the patched fields onto post.
func (p PostPatch) Apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.ImageURL != nil {
		post.ImageURL = *p.ImageURL
	}
}
