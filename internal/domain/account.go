package domain

import "time"

// Account represents a registered user of the site.
type Account struct {
	ID            int64
	Name          string
	Email         string
	PasswordHash  string
	SessionTokens []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AuthResult is returned to callers after a successful register or login.
type AuthResult struct {
	Token string
	Name  string
	Email string
}
