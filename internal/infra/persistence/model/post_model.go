// Package model holds the row structs shared by the relational store drivers.
package model

import (
	"time"

	"inkwell/internal/domain/entity"
)

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID        string     `gorm:"type:varchar(64);primaryKey" db:"id"`
	Title     string     `gorm:"type:varchar(300);not null" db:"title"`
	Content   string     `gorm:"type:text;not null" db:"content"`
	Author    string     `gorm:"type:varchar(200);not null;index" db:"author"`
	AuthorID  string     `gorm:"type:varchar(128);not null;default:'';index" db:"author_id"`
	Category  string     `gorm:"type:varchar(32);not null;index" db:"category"`
	ImageURL  string     `gorm:"type:text;not null;default:''" db:"image_url"`
	CreatedAt time.Time  `gorm:"not null;index" db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

func FromPostDomain(post *entity.Post) *PostModel {
	m := &PostModel{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.Author,
		AuthorID:  post.AuthorID,
		Category:  string(post.Category),
		ImageURL:  post.ImageURL,
		CreatedAt: post.CreatedAt.UTC(),
	}
	if post.UpdatedAt != nil {
		updated := post.UpdatedAt.UTC()
		m.UpdatedAt = &updated
	}

	return m
}

func (m *PostModel) ToDomain() *entity.Post {
	post := &entity.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Author:    m.Author,
		AuthorID:  m.AuthorID,
		Category:  entity.Category(m.Category),
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt.UTC(),
	}
	if m.UpdatedAt != nil {
		updated := m.UpdatedAt.UTC()
		post.UpdatedAt = &updated
	}

	return post
}

// PostsToDomain converts rows, returning an empty slice for no rows.
func PostsToDomain(models []*PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(models))
	for _, m := range models {
		posts = append(posts, m.ToDomain())
	}

	return posts
}

// PatchColumns returns the column updates for a post patch.
func PatchColumns(patch entity.PostPatch, updatedAt time.Time) map[string]any {
	columns := map[string]any{"updated_at": updatedAt.UTC()}
	if patch.Title != nil {
		columns["title"] = *patch.Title
	}
	if patch.Content != nil {
		columns["content"] = *patch.Content
	}
	if patch.ImageURL != nil {
		columns["image_url"] = *patch.ImageURL
	}

	return columns
}

// CategoryCountRow is one row of a GROUP BY category count.
type CategoryCountRow struct {
	Category string `db:"category"`
	Count    int    `db:"count"`
}
