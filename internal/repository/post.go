package repository

import (
	"context"

	"site-backend/internal/domain"
)

// PostRepository exposes persistence operations for blog posts.
type PostRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, post *domain.Post) (int64, error)
	List(ctx context.Context, limit int) ([]domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
}
