package repository

import (
	"context"

	"site-backend/internal/domain"
)

// ContactRepository stores contact form submissions.
type ContactRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, msg *domain.ContactMessage) (int64, error)
}
