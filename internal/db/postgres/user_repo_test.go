package postgres

import (
	"context"
	"testing"

	"Postagram/internal/core/pagination"
	"Postagram/internal/core/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, users.NewUser{Username: "alice", Email: "alice@mail.com", FullName: "Alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "hash", got.PasswordHash)

	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, users.ErrNotFound)

	_, err = repo.GetByID(ctx, "00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestUserRepo_UniqueConstraints(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, users.NewUser{Username: "alice", Email: "alice@mail.com", FullName: "Alice", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, users.NewUser{Username: "alice", Email: "new@mail.com", FullName: "A", PasswordHash: "h"})
	assert.ErrorIs(t, err, users.ErrUsernameTaken)

	_, err = repo.Create(ctx, users.NewUser{Username: "bob", Email: "alice@mail.com", FullName: "B", PasswordHash: "h"})
	assert.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestUserRepo_ListFilterAndPage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"ana", "ben", "cid"} {
		u, err := repo.Create(ctx, users.NewUser{Username: name, Email: name + "@mail.com", FullName: name, PasswordHash: "h"})
		require.NoError(t, err)
		ids = append(ids, u.ID)
	}

	all, err := repo.List(ctx, users.ListFilter{}, pagination.All)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids, []string{all[0].ID, all[1].ID, all[2].ID})

	window, err := repo.List(ctx, users.ListFilter{}, pagination.New(1, 1))
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, ids[1], window[0].ID)

	byEmail, err := repo.List(ctx, users.ListFilter{Email: "cid@mail.com"}, pagination.All)
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, ids[2], byEmail[0].ID)

	none, err := repo.List(ctx, users.ListFilter{Username: "zed"}, pagination.All)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUserRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u, err := repo.Create(ctx, users.NewUser{Username: "alice", Email: "alice@mail.com", FullName: "Alice", PasswordHash: "h"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, u.ID))
	assert.ErrorIs(t, repo.Delete(ctx, u.ID), users.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "invalid-user-id"), users.ErrNotFound)
}
