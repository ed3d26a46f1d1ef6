package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
)

func userColumns() []string {
	return []string{"id", "username", "email", "password_hash", "is_admin", "created_at"}
}

func TestUserRepo_FindByUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := database.NewUserRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("alice", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "alice", "alice@example.com", "hash", false, time.Now()))

	user, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestUserRepo_FindByUsernameNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := database.NewUserRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	user, err := repo.FindByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepo_FindByEmailNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := database.NewUserRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("ghost@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	user, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepo_Add(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := database.NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Add(context.Background(), user))
	assert.Equal(t, uint(1), user.ID)
}

func TestUserRepo_AddDuplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := database.NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	assert.Error(t, repo.Add(context.Background(), user))
}
