package entity

import (
	"strings"
	"time"
)

// Profile is the per-user document created at sign-up.
type Profile struct {
	UserID    string    `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayName joins first and last name.
func (p *Profile) DisplayName() string {
	if p == nil {
		return ""
	}

	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// ProfilePatch updates profile fields selectively.
type ProfilePatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
}

func (p ProfilePatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil
}

func (p ProfilePatch) Apply(profile *Profile) {
	if p.FirstName != nil {
		profile.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		profile.LastName = *p.LastName
	}
	if p.Email != nil {
		profile.Email = *p.Email
	}
}
