package firestore

import (
	"encoding/base64"
	"time"

	"inkwell/internal/domain/entity"

	"cloud.google.com/go/firestore"
)

// postDocument is the stored shape of a posts/{id} document. Documents written
// before authorId existed decode with an empty AuthorID.
type postDocument struct {
	Title     string     `firestore:"title"`
	Content   string     `firestore:"content"`
	Author    string     `firestore:"author"`
	AuthorID  string     `firestore:"authorId,omitempty"`
	Category  string     `firestore:"category"`
	ImageURL  string     `firestore:"imageUrl,omitempty"`
	CreatedAt time.Time  `firestore:"createdAt"`
	UpdatedAt *time.Time `firestore:"updatedAt,omitempty"`
}

func fromPost(post *entity.Post) *postDocument {
	return &postDocument{
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.Author,
		AuthorID:  post.AuthorID,
		Category:  string(post.Category),
		ImageURL:  post.ImageURL,
		CreatedAt: post.CreatedAt.UTC(),
		UpdatedAt: post.UpdatedAt,
	}
}

func (d *postDocument) toPost(id string) *entity.Post {
	post := &entity.Post{
		ID:        id,
		Title:     d.Title,
		Content:   d.Content,
		Author:    d.Author,
		AuthorID:  d.AuthorID,
		Category:  entity.Category(d.Category),
		ImageURL:  d.ImageURL,
		CreatedAt: d.CreatedAt.UTC(),
	}
	if d.UpdatedAt != nil {
		updated := d.UpdatedAt.UTC()
		post.UpdatedAt = &updated
	}

	return post
}

func postUpdates(patch entity.PostPatch, updatedAt time.Time) []firestore.Update {
	updates := []firestore.Update{{Path: "updatedAt", Value: updatedAt.UTC()}}
	if patch.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *patch.Title})
	}
	if patch.Content != nil {
		updates = append(updates, firestore.Update{Path: "content", Value: *patch.Content})
	}
	if patch.ImageURL != nil {
		updates = append(updates, firestore.Update{Path: "imageUrl", Value: *patch.ImageURL})
	}

	return updates
}

// profileDocument is the stored shape of a users/{uid} document.
type profileDocument struct {
	FirstName string    `firestore:"firstName"`
	LastName  string    `firestore:"lastName"`
	Email     string    `firestore:"email"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func (d *profileDocument) toProfile(userID string) *entity.Profile {
	return &entity.Profile{
		UserID:    userID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

// credentialDocument is the stored shape of a credentials/{provider_subject} document.
type credentialDocument struct {
	UserID           string    `firestore:"userId"`
	Provider         string    `firestore:"provider"`
	Subject          string    `firestore:"subject"`
	PasswordHash     string    `firestore:"passwordHash,omitempty"`
	TokensValidAfter time.Time `firestore:"tokensValidAfter"`
	CreatedAt        time.Time `firestore:"createdAt"`
}

func (d *credentialDocument) toCredential() *entity.Credential {
	return &entity.Credential{
		UserID:           d.UserID,
		Provider:         entity.ProviderType(d.Provider),
		Subject:          d.Subject,
		PasswordHash:     d.PasswordHash,
		TokensValidAfter: d.TokensValidAfter.UTC(),
		CreatedAt:        d.CreatedAt.UTC(),
	}
}

// credentialID derives a document id that is unique per provider and subject.
// Subjects are encoded because document ids cannot contain slashes.
func credentialID(provider entity.ProviderType, subject string) string {
	return string(provider) + "_" + base64.RawURLEncoding.EncodeToString([]byte(subject))
}
