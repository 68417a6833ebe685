package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"site-backend/internal/domain"
)

func TestContactCreateAssignsReference(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(testDB(t))
	require.NoError(t, repo.Init(ctx))

	msg := &domain.ContactMessage{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Hello there",
	}
	id, err := repo.Create(ctx, msg)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	_, err = uuid.Parse(msg.Reference)
	assert.NoError(t, err, "reference must be a uuid")
	assert.False(t, msg.CreatedAt.IsZero())
}
