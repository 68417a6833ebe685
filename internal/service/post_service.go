package service

import (
	"context"

	"site-backend/internal/domain"
	"site-backend/internal/repository"
)

// defaultPostLimit caps the public blog listing.
const defaultPostLimit = 20

// PostService serves published blog posts.
type PostService interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	GetPost(ctx context.Context, slug string) (*domain.Post, error)
	CreatePost(ctx context.Context, post *domain.Post) (int64, error)
}

type postService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx, defaultPostLimit)
}

func (s *postService) GetPost(ctx context.Context, slug string) (*domain.Post, error) {
	return s.posts.GetBySlug(ctx, slug)
}

func (s *postService) CreatePost(ctx context.Context, post *domain.Post) (int64, error) {
	return s.posts.Create(ctx, post)
}
