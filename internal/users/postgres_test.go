package users

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"session-auth/internal/auth"
	"session-auth/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

var userColumns = []string{"id", "email", "password_hash", "first_name", "last_name", "created_at", "updated_at"}

func newMockStore(t *testing.T) (*PGStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewPGStore(&db.DB{DB: sqlDB}), mock
}

func TestPGStoreGet(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id::text = $1")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u1", "a@example.com", "hash", "Ada", "Lovelace", now, now))

	u, err := store.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if u == nil || u.ID != "u1" || u.Email != "a@example.com" || u.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGStoreGetNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id::text = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	u, err := store.Get(context.Background(), "ghost")
	if err != nil || u != nil {
		t.Fatalf("Get = %+v, %v; want nil, nil", u, err)
	}

	if u, err := store.Get(context.Background(), ""); err != nil || u != nil {
		t.Fatalf("Get(\"\") = %+v, %v", u, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGStoreGetError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id::text = $1")).
		WillReturnError(errors.New("connection reset"))

	if _, err := store.Get(context.Background(), "u1"); err == nil {
		t.Fatal("expected error")
	}
}

func TestPGStoreFindByEmail(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(email) = LOWER($1)")).
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u1", "a@example.com", "hash", "", "", now, now))

	u, err := store.FindByEmail(context.Background(), "  a@example.com ")
	if err != nil || u == nil || u.ID != "u1" {
		t.Fatalf("FindByEmail = %+v, %v", u, err)
	}
}

func TestPGStoreCreate(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("a@example.com", "hash", "Ada", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("u1", now, now))

	u := &auth.User{Email: "a@example.com", PasswordHash: "hash", FirstName: "Ada"}
	if err := store.Create(context.Background(), u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID != "u1" || u.CreatedAt.IsZero() {
		t.Fatalf("generated fields not set: %+v", u)
	}
}

func TestPGStoreCreateDuplicate(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505"})

	err := store.Create(context.Background(), &auth.User{Email: "a@example.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}

	if err := store.Create(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil user")
	}
}
