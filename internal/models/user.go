package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id" db:"id"`

	// Name is the display name of the user.
	Name string `json:"name" db:"name"`

	// Email is the user's email address (unique, case-sensitive as stored).
	// Used as the login key.
	Email string `json:"email" db:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewUser creates a new user with a generated ID and creation time.
func NewUser(email, name, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
