package repository

import (
	"context"
	"errors"

	"site-backend/internal/domain"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken is returned when an account with the same email already exists.
	// The unique index on email is the authoritative signal; callers should not
	// rely on a prior read alone.
	ErrEmailTaken = errors.New("email already registered")
)

// AccountRepository defines persistence operations for Account entities.
type AccountRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, account *domain.Account) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	AppendSessionToken(ctx context.Context, id int64, token string) error
	ListSessionTokens(ctx context.Context, id int64) ([]string, error)
}
