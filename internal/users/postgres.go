package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"session-auth/internal/auth"
	"session-auth/internal/db"

	"github.com/lib/pq"
)

// ErrEmailTaken is returned by Create when the email is already registered.
var ErrEmailTaken = errors.New("users: email already registered")

const uniqueViolation = "23505"

const selectUser = `
	SELECT id, email, password_hash, first_name, last_name, created_at, updated_at
	FROM users
`

// PGStore reads and writes users in Postgres. It is the canonical
// auth.UserResolver.
type PGStore struct {
	db *db.DB
}

func NewPGStore(db *db.DB) *PGStore {
	return &PGStore{db: db}
}

// Get returns the user with id, or (nil, nil) if there is none.
func (s *PGStore) Get(ctx context.Context, id string) (*auth.User, error) {
	if id == "" {
		return nil, nil
	}
	return s.queryOne(ctx, selectUser+`WHERE id::text = $1`, id)
}

// FindByEmail looks a user up by case-insensitive email.
func (s *PGStore) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	if email == "" {
		return nil, nil
	}
	return s.queryOne(ctx, selectUser+`WHERE LOWER(email) = LOWER($1)`, strings.TrimSpace(email))
}

// Create inserts u and fills in its generated id and timestamps.
func (s *PGStore) Create(ctx context.Context, u *auth.User) error {
	if u == nil {
		return errors.New("users: user is nil")
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("users: insert: %w", err)
	}
	return nil
}

func (s *PGStore) queryOne(ctx context.Context, query string, arg any) (*auth.User, error) {
	var u auth.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("users: query: %w", err)
	}
	return &u, nil
}
