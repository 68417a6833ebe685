package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"site-backend/internal/domain"
	"site-backend/internal/repository"
)

func testPostRepo(t *testing.T) repository.PostRepository {
	t.Helper()
	repo := NewPostRepository(testDB(t))
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestPostRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := testPostRepo(t)

	post := &domain.Post{
		Title:      "Launch week",
		Slug:       "launch-week",
		Excerpt:    "What shipped",
		Content:    "Full writeup.",
		CoverImage: "covers/launch.png",
		Tags:       []string{"news", "product"},
	}
	_, err := repo.Create(ctx, post)
	require.NoError(t, err)

	got, err := repo.GetBySlug(ctx, "launch-week")
	require.NoError(t, err)
	assert.Equal(t, "Launch week", got.Title)
	assert.Equal(t, "covers/launch.png", got.CoverImage)
	assert.Equal(t, []string{"news", "product"}, got.Tags)
}

func TestPostTagsDefaultEmpty(t *testing.T) {
	ctx := context.Background()
	repo := testPostRepo(t)

	_, err := repo.Create(ctx, &domain.Post{Title: "t", Slug: "no-tags", Excerpt: "e", Content: "c"})
	require.NoError(t, err)

	got, err := repo.GetBySlug(ctx, "no-tags")
	require.NoError(t, err)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

func TestPostListNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	repo := testPostRepo(t)

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, &domain.Post{
			Title:   fmt.Sprintf("post %d", i),
			Slug:    fmt.Sprintf("post-%d", i),
			Excerpt: "e",
			Content: "c",
		})
		require.NoError(t, err)
	}

	posts, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "post-4", posts[0].Slug)
	assert.Equal(t, "post-2", posts[2].Slug)
}

func TestPostGetMissingSlug(t *testing.T) {
	ctx := context.Background()
	repo := testPostRepo(t)

	_, err := repo.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
