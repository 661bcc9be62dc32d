// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the application layer and the store drivers.
package repository

import "errors"

var (
	// ErrPostNotFound is returned when no post has the requested id.
	ErrPostNotFound = errors.New("post not found")

	// ErrProfileNotFound is returned when a user has no profile document.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrCredentialNotFound is returned when no credential matches the lookup.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrDuplicate is returned when a create collides with an existing record.
	ErrDuplicate = errors.New("record already exists")
)
