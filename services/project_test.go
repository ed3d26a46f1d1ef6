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

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	owner := models.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, store.Add(ctx, &owner))

	svc := services.NewProjectService(projectStore{store}, projectStore{store})

	imageURL := "https://example.com/p.png"

	t.Run("valid", func(t *testing.T) {
		project, err := svc.Create(ctx, owner.ID, "P", "a demo project", &imageURL, nil)
		require.NoError(t, err)
		assert.NotZero(t, project.ID)
		assert.Equal(t, owner.ID, project.UserID)
		assert.Equal(t, &imageURL, project.ImageURL)
		assert.Nil(t, project.GithubURL)
	})

	t.Run("duplicate titles allowed", func(t *testing.T) {
		_, err := svc.Create(ctx, owner.ID, "P", "same title again", nil, nil)
		assert.NoError(t, err)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := svc.Create(ctx, owner.ID, "", "desc", nil, nil)
		assert.ErrorIs(t, err, errs.ErrMissingRequiredField)
	})

	t.Run("missing description", func(t *testing.T) {
		_, err := svc.Create(ctx, owner.ID, "T", "", nil, nil)
		assert.ErrorIs(t, err, errs.ErrMissingRequiredField)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := svc.Create(ctx, services.AnonymousID, "T", "desc", nil, nil)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestProjectService_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	owner := models.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, store.Add(ctx, &owner))

	svc := services.NewProjectService(projectStore{store}, projectStore{store})

	first, err := svc.Create(ctx, owner.ID, "first", "desc", nil, nil)
	require.NoError(t, err)
	second, err := svc.Create(ctx, owner.ID, "second", "desc", nil, nil)
	require.NoError(t, err)

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, second.ID, projects[0].ID)
	assert.Equal(t, first.ID, projects[1].ID)
}

func TestProjectService_Get(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	owner := models.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, store.Add(ctx, &owner))

	svc := services.NewProjectService(projectStore{store}, projectStore{store})
	created, err := svc.Create(ctx, owner.ID, "P", "desc", nil, nil)
	require.NoError(t, err)

	t.Run("existing", func(t *testing.T) {
		project, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "P", project.Title)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := svc.Get(ctx, 999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
