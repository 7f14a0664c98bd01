package repository

import (
	"context"
	"time"

	"Storefront/models"
	"Storefront/store"
)

// SessionRepository manages the "currentUser" marker, the issued login tokens
// and the pending-action records that resume an interrupted checkout or
// favorite after login.
type SessionRepository struct {
	store store.Store
}

func NewSessionRepository(s store.Store) *SessionRepository {
	return &SessionRepository{store: s}
}

// CurrentUser returns the session marker, or nil when nobody is logged in.
func (r *SessionRepository) CurrentUser(ctx context.Context) *models.SessionUser {
	var user models.SessionUser
	if !r.store.Get(ctx, store.KeyCurrentUser, &user) || user.Email == "" {
		return nil
	}
	return &user
}

func (r *SessionRepository) SetCurrentUser(ctx context.Context, user models.SessionUser) error {
	return r.store.Set(ctx, store.KeyCurrentUser, user)
}

func (r *SessionRepository) ClearCurrentUser(ctx context.Context) error {
	return r.store.Delete(ctx, store.KeyCurrentUser)
}

func (r *SessionRepository) tokens(ctx context.Context) []models.LoginToken {
	var tokens []models.LoginToken
	r.store.Get(ctx, store.KeySessions, &tokens)
	return tokens
}

// RecordToken remembers an issued token so logout can revoke it.
func (r *SessionRepository) RecordToken(ctx context.Context, token models.LoginToken) error {
	tokens := r.tokens(ctx)
	// Drop expired entries while we hold the blob anyway.
	kept := tokens[:0]
	now := time.Now()
	for _, t := range tokens {
		if t.ExpirationTime.After(now) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, token)
	return r.store.Set(ctx, store.KeySessions, kept)
}

// TokenValid reports whether the token was issued and not yet revoked.
func (r *SessionRepository) TokenValid(ctx context.Context, token string) bool {
	now := time.Now()
	for _, t := range r.tokens(ctx) {
		if t.Token == token && t.ExpirationTime.After(now) {
			return true
		}
	}
	return false
}

// RevokeToken removes the token; it reports whether anything was revoked.
func (r *SessionRepository) RevokeToken(ctx context.Context, token string) (bool, error) {
	tokens := r.tokens(ctx)
	kept := tokens[:0]
	revoked := false
	for _, t := range tokens {
		if t.Token == token {
			revoked = true
			continue
		}
		kept = append(kept, t)
	}
	if !revoked {
		return false, nil
	}
	return true, r.store.Set(ctx, store.KeySessions, kept)
}

// SetPendingAction records what the visitor wanted to do before login.
func (r *SessionRepository) SetPendingAction(ctx context.Context, action models.PendingAction) error {
	return r.store.Set(ctx, store.KeyPendingAction, action)
}

// ConsumePendingAction returns and clears the pending action, if any.
func (r *SessionRepository) ConsumePendingAction(ctx context.Context) *models.PendingAction {
	var action models.PendingAction
	if !r.store.Get(ctx, store.KeyPendingAction, &action) || action.Action == "" {
		return nil
	}
	_ = r.store.Delete(ctx, store.KeyPendingAction)
	return &action
}

// SetPendingCheckout flags that checkout should resume after login.
func (r *SessionRepository) SetPendingCheckout(ctx context.Context) error {
	return r.store.Set(ctx, store.KeyPendingCheckout, true)
}

// ConsumePendingCheckout returns and clears the pending-checkout flag.
func (r *SessionRepository) ConsumePendingCheckout(ctx context.Context) bool {
	var pending bool
	if !r.store.Get(ctx, store.KeyPendingCheckout, &pending) || !pending {
		return false
	}
	_ = r.store.Delete(ctx, store.KeyPendingCheckout)
	return true
}
