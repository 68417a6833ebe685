package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"site-backend/internal/auth"
	"site-backend/internal/domain"
	"site-backend/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are
	// incorrect. An unknown email and a wrong password are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")
)

// AccountService orchestrates registration and login. On success both
// operations issue a fresh session token and append it to the account's
// token list; previously issued tokens remain valid.
type AccountService interface {
	Register(ctx context.Context, name, email, password string) (*domain.AuthResult, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
}

type accountService struct {
	accounts repository.AccountRepository
}

func NewAccountService(accounts repository.AccountRepository) AccountService {
	return &accountService{accounts: accounts}
}

func (s *accountService) Register(ctx context.Context, name, email, password string) (*domain.AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, errors.New("name is required")
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	// Cheap pre-check so a duplicate registration skips the slow hash. The
	// unique index on email remains the authoritative guard; the insert below
	// reports the conflict if a concurrent registration wins the race.
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: auth.Hash(password),
	}

	id, err := s.accounts.Create(ctx, account)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token := auth.NewToken()
	if err := s.accounts.AppendSessionToken(ctx, id, token); err != nil {
		return nil, fmt.Errorf("attach session token: %w", err)
	}

	return &domain.AuthResult{Token: token, Name: name, Email: email}, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.Verify(password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token := auth.NewToken()
	if err := s.accounts.AppendSessionToken(ctx, account.ID, token); err != nil {
		return nil, fmt.Errorf("attach session token: %w", err)
	}

	return &domain.AuthResult{Token: token, Name: account.Name, Email: account.Email}, nil
}

func (s *accountService) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}
