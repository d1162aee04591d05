// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and the profile fields
// collected at registration.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the server-generated handle for the user.
	// It must be unique across all users and is immutable after creation.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is stored exactly as
	// supplied (no case normalization).
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This must never store plaintext passwords and must never be
	// returned to a client.
	PasswordHash string `gorm:"size:255;not null"`

	// FirstName is the user's given name as supplied at registration.
	FirstName string `gorm:"size:255;not null"`

	// LastName is the user's family name as supplied at registration.
	LastName string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time
}
