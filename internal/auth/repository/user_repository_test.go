package repository

import (
	"context"
	"testing"

	authdomain "notekeeper-backend/internal/auth/domain"
	"notekeeper-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testutil.NewDB(t, &authdomain.User{}))

	user := &authdomain.User{Name: "T", Email: "t@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := repo.FindByEmail(ctx, "t@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)

	got, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "T", got.Name)

	got, err = repo.FindByEmail(ctx, "missing@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.FindByID(ctx, user.ID+100)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testutil.NewDB(t, &authdomain.User{}))

	require.NoError(t, repo.Create(ctx, &authdomain.User{Name: "A", Email: "dup@example.com", PasswordHash: "x"}))
	err := repo.Create(ctx, &authdomain.User{Name: "B", Email: "dup@example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
