package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/store"
)

func TestUserCreateAndVerify(t *testing.T) {
	users := NewUserRepository(store.NewMemoryStore())
	ctx := context.Background()

	created, err := users.Create(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", created.Password, "password is stored hashed")

	found := users.FindByEmail(ctx, "ada@example.com")
	require.NotNil(t, found)
	assert.True(t, users.VerifyPassword(found, "hunter22"))
	assert.False(t, users.VerifyPassword(found, "hunter23"))
}

func TestUserDuplicateEmail(t *testing.T) {
	users := NewUserRepository(store.NewMemoryStore())
	ctx := context.Background()

	_, err := users.Create(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)

	_, err = users.Create(ctx, "ada@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Email comparison is case-sensitive, so this is a distinct account.
	_, err = users.Create(ctx, "Ada@example.com", "other")
	assert.NoError(t, err)
	assert.Nil(t, users.FindByEmail(ctx, "ADA@example.com"))
}

func TestUserUpdatePassword(t *testing.T) {
	users := NewUserRepository(store.NewMemoryStore())
	ctx := context.Background()

	_, err := users.Create(ctx, "ada@example.com", "oldpass")
	require.NoError(t, err)

	require.NoError(t, users.UpdatePassword(ctx, "ada@example.com", "newpass"))
	found := users.FindByEmail(ctx, "ada@example.com")
	require.NotNil(t, found)
	assert.False(t, users.VerifyPassword(found, "oldpass"))
	assert.True(t, users.VerifyPassword(found, "newpass"))

	assert.Error(t, users.UpdatePassword(ctx, "nobody@example.com", "x"))
}

func TestUserUpdateName(t *testing.T) {
	users := NewUserRepository(store.NewMemoryStore())
	ctx := context.Background()

	_, err := users.Create(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)

	require.NoError(t, users.UpdateName(ctx, "ada@example.com", "Ada Lovelace"))
	assert.Equal(t, "Ada Lovelace", users.FindByEmail(ctx, "ada@example.com").Name)
}
