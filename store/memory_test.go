package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyCart, []string{"a", "b"}))

	var got []string
	assert.True(t, s.Get(ctx, KeyCart, &got))
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestMemoryStoreGetFailsSoft(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	// Absent key: dest untouched, no panic, no error.
	var got []string
	assert.False(t, s.Get(ctx, "missing", &got))
	assert.Nil(t, got)

	// Malformed blob decodes to nothing instead of failing the caller.
	s.SetRaw(KeyCart, []byte("{not json"))
	assert.False(t, s.Get(ctx, KeyCart, &got))
	assert.Nil(t, got)

	// Blob of the wrong shape is treated the same as a corrupt one.
	require.NoError(t, s.Set(ctx, KeyCart, "a plain string"))
	assert.False(t, s.Get(ctx, KeyCart, &got))
}

func TestMemoryStoreGetIsAllOrNothing(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	type line struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	}

	// A valid array with one wrong-typed field must not leave a partial
	// decode behind: no ghost entries, no overwritten dest.
	s.SetRaw(KeyCart, []byte(`[{"id":"a","quantity":2},{"id":"b","quantity":"oops"}]`))

	var got []line
	assert.False(t, s.Get(ctx, KeyCart, &got))
	assert.Nil(t, got)

	prev := []line{{ID: "kept", Quantity: 1}}
	assert.False(t, s.Get(ctx, KeyCart, &prev))
	assert.Equal(t, []line{{ID: "kept", Quantity: 1}}, prev)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyUsers, []int{1}))
	require.NoError(t, s.Delete(ctx, KeyUsers))

	var got []int
	assert.False(t, s.Get(ctx, KeyUsers, &got))
}

func TestMemoryStoreNotifiesSubscribers(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	cartEvents := 0
	otherEvents := 0
	s.Subscribe(KeyCart, func() { cartEvents++ })
	s.Subscribe(KeyOrders, func() { otherEvents++ })

	require.NoError(t, s.Set(ctx, KeyCart, []int{1}))
	require.NoError(t, s.Set(ctx, KeyCart, []int{1, 2}))
	require.NoError(t, s.Delete(ctx, KeyCart))

	assert.Equal(t, 3, cartEvents, "subscriber sees every write and delete of its key")
	assert.Equal(t, 0, otherEvents, "other keys stay quiet")
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyCart, []string{"first"}))
	require.NoError(t, s.Set(ctx, KeyCart, []string{"second"}))

	var got []string
	assert.True(t, s.Get(ctx, KeyCart, &got))
	assert.Equal(t, []string{"second"}, got, "whole blob is overwritten")
}
