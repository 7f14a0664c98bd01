package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/models"
	"Storefront/store"
)

func TestSessionCurrentUser(t *testing.T) {
	sessions := NewSessionRepository(store.NewMemoryStore())
	ctx := context.Background()

	assert.Nil(t, sessions.CurrentUser(ctx))

	require.NoError(t, sessions.SetCurrentUser(ctx, models.SessionUser{
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
	}))
	current := sessions.CurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, "ada@example.com", current.Email)

	require.NoError(t, sessions.ClearCurrentUser(ctx))
	assert.Nil(t, sessions.CurrentUser(ctx))
}

func TestSessionTokenLifecycle(t *testing.T) {
	sessions := NewSessionRepository(store.NewMemoryStore())
	ctx := context.Background()

	token := models.LoginToken{
		Token:          "tok-1",
		Email:          "ada@example.com",
		ExpirationTime: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessions.RecordToken(ctx, token))
	assert.True(t, sessions.TokenValid(ctx, "tok-1"))
	assert.False(t, sessions.TokenValid(ctx, "tok-unknown"))

	revoked, err := sessions.RevokeToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.False(t, sessions.TokenValid(ctx, "tok-1"))

	revoked, err = sessions.RevokeToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSessionExpiredTokensPruned(t *testing.T) {
	sessions := NewSessionRepository(store.NewMemoryStore())
	ctx := context.Background()

	expired := models.LoginToken{
		Token:          "tok-old",
		Email:          "ada@example.com",
		ExpirationTime: time.Now().Add(-time.Minute),
	}
	require.NoError(t, sessions.RecordToken(ctx, expired))
	assert.False(t, sessions.TokenValid(ctx, "tok-old"))

	fresh := models.LoginToken{
		Token:          "tok-new",
		Email:          "ada@example.com",
		ExpirationTime: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessions.RecordToken(ctx, fresh))

	assert.True(t, sessions.TokenValid(ctx, "tok-new"))
	assert.False(t, sessions.TokenValid(ctx, "tok-old"))
}

func TestSessionPendingAction(t *testing.T) {
	sessions := NewSessionRepository(store.NewMemoryStore())
	ctx := context.Background()

	assert.Nil(t, sessions.ConsumePendingAction(ctx))

	require.NoError(t, sessions.SetPendingAction(ctx, models.PendingAction{
		Action:    "cart",
		ProductID: "crp-001",
	}))
	action := sessions.ConsumePendingAction(ctx)
	require.NotNil(t, action)
	assert.Equal(t, "cart", action.Action)
	assert.Equal(t, "crp-001", action.ProductID)

	// Consuming clears the record.
	assert.Nil(t, sessions.ConsumePendingAction(ctx))
}

func TestSessionPendingCheckout(t *testing.T) {
	sessions := NewSessionRepository(store.NewMemoryStore())
	ctx := context.Background()

	assert.False(t, sessions.ConsumePendingCheckout(ctx))

	require.NoError(t, sessions.SetPendingCheckout(ctx))
	assert.True(t, sessions.ConsumePendingCheckout(ctx))
	assert.False(t, sessions.ConsumePendingCheckout(ctx))
}
