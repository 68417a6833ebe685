package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"site-backend/internal/domain"
	"site-backend/internal/repository"
)

const createAccountsSchema = `
CREATE TABLE IF NOT EXISTS accounts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS session_tokens (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
	token TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_tokens_account ON session_tokens(account_id);
`

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAccountsSchema); err != nil {
		return fmt.Errorf("create accounts schema: %w", err)
	}
	return nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (int64, error) {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO accounts (name, email, password_hash, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		account.Name,
		account.Email,
		account.PasswordHash,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, repository.ErrEmailTaken
		}
		return 0, fmt.Errorf("insert account: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("account last insert id: %w", err)
	}
	account.ID = id
	return id, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, email, password_hash, created_at, updated_at
FROM accounts
WHERE email = ?`,
		email,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, err
	}
	return r.withTokens(ctx, account)
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, email, password_hash, created_at, updated_at
FROM accounts
WHERE id = ?`,
		id,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, err
	}
	return r.withTokens(ctx, account)
}

// AppendSessionToken adds a token to the end of the account's token list.
// Tokens are never removed, matching the issue-only session model.
func (r *AccountRepository) AppendSessionToken(ctx context.Context, id int64, token string) error {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO session_tokens (account_id, token, created_at)
SELECT id, ?, ? FROM accounts WHERE id = ?`,
		token,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("append session token: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("append session token rows: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) ListSessionTokens(ctx context.Context, id int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT token FROM session_tokens
WHERE account_id = ?
ORDER BY id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("list session tokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("scan session token: %w", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

func (r *AccountRepository) withTokens(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	tokens, err := r.ListSessionTokens(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	account.SessionTokens = tokens
	return account, nil
}

func scanAccount(row interface {
	Scan(dest ...any) error
}) (*domain.Account, error) {
	var account domain.Account
	if err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return &account, nil
}
