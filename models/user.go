package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication and for owning
// job applications.
// Credential hashes are never exposed via JSON.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// SecurityQuestion is the user-chosen question asked during password
	// recovery. It is not a secret.
	SecurityQuestion string `json:"securityQuestion,omitempty"`

	// SecurityAnswerHash is the bcrypt hash of the normalised security answer.
	SecurityAnswerHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// Profile returns the public subset of the user returned by signup and login.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:    u.UserID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// UserProfile is the public identity returned alongside a session token.
type UserProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NormalizeEmail lower-cases and trims an email so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
