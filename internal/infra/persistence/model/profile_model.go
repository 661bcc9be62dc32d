package model

import (
	"time"

	"inkwell/internal/domain/entity"
)

// ProfileModel mirrors the 'users' table holding one profile row per account.
// It is shared by the GORM and sqlx drivers.
type ProfileModel struct {
	UserID    string    `gorm:"type:varchar(128);primaryKey" db:"user_id"`
	FirstName string    `gorm:"type:varchar(100);not null" db:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" db:"last_name"`
	Email     string    `gorm:"type:varchar(255);not null;index" db:"email"`
	CreatedAt time.Time `gorm:"not null" db:"created_at"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "users"
}

func FromProfileDomain(profile *entity.Profile) *ProfileModel {
	return &ProfileModel{
		UserID:    profile.UserID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		CreatedAt: profile.CreatedAt.UTC(),
	}
}

func (m *ProfileModel) ToDomain() *entity.Profile {
	return &entity.Profile{
		UserID:    m.UserID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// CredentialModel mirrors the 'credentials' table used by the self-hosted identity provider.
// A provider and subject pair identifies exactly one credential.
type CredentialModel struct {
	Provider         string    `gorm:"type:varchar(32);primaryKey" db:"provider"`
	Subject          string    `gorm:"type:varchar(255);primaryKey" db:"subject"`
	UserID           string    `gorm:"type:varchar(128);not null;index" db:"user_id"`
	PasswordHash     string    `gorm:"type:varchar(255)" db:"password_hash"`
	TokensValidAfter time.Time `gorm:"not null" db:"tokens_valid_after"`
	CreatedAt        time.Time `gorm:"not null" db:"created_at"`
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

func FromCredentialDomain(credential *entity.Credential) *CredentialModel {
	return &CredentialModel{
		Provider:         string(credential.Provider),
		Subject:          credential.Subject,
		UserID:           credential.UserID,
		PasswordHash:     credential.PasswordHash,
		TokensValidAfter: credential.TokensValidAfter.UTC(),
		CreatedAt:        credential.CreatedAt.UTC(),
	}
}

func (m *CredentialModel) ToDomain() *entity.Credential {
	return &entity.Credential{
		UserID:           m.UserID,
		Provider:         entity.ProviderType(m.Provider),
		Subject:          m.Subject,
		PasswordHash:     m.PasswordHash,
		TokensValidAfter: m.TokensValidAfter.UTC(),
		CreatedAt:        m.CreatedAt.UTC(),
	}
}
