package auth

import (
	"context"
	"strings"
	"time"
)

// User is the identity record an authenticated request resolves to.
// It carries facts only; authorization decisions live elsewhere.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName returns the best human-readable name for the user.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	return u.Email
}

// UserResolver looks a user up by id in the identity store.
// A missing user is reported as (nil, nil), not as an error.
type UserResolver interface {
	Get(ctx context.Context, userID string) (*User, error)
}
