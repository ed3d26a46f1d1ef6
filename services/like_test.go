package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
)

func likeFixture(t *testing.T) (*memStore, *services.LikeService, models.User, models.Project) {
	t.Helper()
	ctx := context.Background()
	store := newMemStore()

	user := models.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, store.Add(ctx, &user))

	project := models.Project{Title: "P", Description: "demo", UserID: user.ID}
	require.NoError(t, projectStore{store}.Add(ctx, &project))

	svc := services.NewLikeService(likeStore{store}, projectStore{store})
	return store, svc, user, project
}

func TestLikeService_ToggleAlternates(t *testing.T) {
	store, svc, user, project := likeFixture(t)
	ctx := context.Background()

	state, err := svc.Toggle(ctx, user.ID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, services.Liked, state)
	assert.Len(t, store.likes, 1)

	state, err = svc.Toggle(ctx, user.ID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, services.Unliked, state)
	assert.Empty(t, store.likes)

	// a full cycle never leaves more than one row for the pair
	state, err = svc.Toggle(ctx, user.ID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, services.Liked, state)
	assert.Len(t, store.likes, 1)
}

func TestLikeService_ToggleMissingProject(t *testing.T) {
	_, svc, user, _ := likeFixture(t)

	_, err := svc.Toggle(context.Background(), user.ID, 999)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestLikeService_ToggleAnonymous(t *testing.T) {
	_, svc, _, project := likeFixture(t)

	_, err := svc.Toggle(context.Background(), services.AnonymousID, project.ID)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestLikeService_Count(t *testing.T) {
	store, svc, user, project := likeFixture(t)
	ctx := context.Background()

	count, err := svc.Count(ctx, project.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	other := models.User{Username: "bob", Email: "bob@example.com"}
	require.NoError(t, store.Add(ctx, &other))

	_, err = svc.Toggle(ctx, user.ID, project.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, other.ID, project.ID)
	require.NoError(t, err)

	count, err = svc.Count(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
