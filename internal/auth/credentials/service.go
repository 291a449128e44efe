package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"session-auth/internal/auth"
	"session-auth/internal/users"
)

var (
	ErrMissingEmail       = errors.New("email missing")
	ErrMissingPassword    = errors.New("password missing")
	ErrUserNotFound       = errors.New("no user found for this email")
	ErrInvalidCredentials = errors.New("wrong password")
	ErrAlreadyRegistered  = errors.New("credentials already exist")
)

// UserStore is the persistence the credential service needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*auth.User, error)
	Create(ctx context.Context, u *auth.User) error
}

type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

// Register creates a user with a hashed password and returns it.
func (s *Service) Register(
	ctx context.Context,
	email string,
	password string,
	firstName string,
	lastName string,
) (*auth.User, error) {

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrMissingEmail
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	existing, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("credentials: lookup %q: %w", email, err)
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &auth.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
	}
	if err := s.store.Create(ctx, u); err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("credentials: create user: %w", err)
	}

	return u, nil
}

// Authenticate returns the user owning email if password matches.
func (s *Service) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (*auth.User, error) {

	if email == "" {
		return nil, ErrMissingEmail
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("credentials: lookup %q: %w", email, err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if !IsValid(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
