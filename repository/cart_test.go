package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/models"
	"Storefront/store"
)

func testProduct(id string, price float64) *models.Product {
	return &models.Product{
		ID:        id,
		Name:      "Product " + id,
		Price:     &price,
		Thumbnail: "/images/" + id + ".jpg",
	}
}

func TestCartAddItemMergesLines(t *testing.T) {
	carts := NewCartRepository(store.NewMemoryStore())
	ctx := context.Background()

	p := testProduct("crp-001", 289.99)
	require.NoError(t, carts.AddItem(ctx, p))
	require.NoError(t, carts.AddItem(ctx, p))

	items := carts.Items(ctx)
	require.Len(t, items, 1, "same product twice yields one line")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(289_99), items[0].PriceCents)

	require.NoError(t, carts.AddItem(ctx, testProduct("tbl-204", 329)))
	assert.Len(t, carts.Items(ctx), 2)
	assert.Equal(t, 3, carts.Count(ctx))
}

func TestCartSetQuantity(t *testing.T) {
	carts := NewCartRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, carts.AddItem(ctx, testProduct("a", 10)))
	require.NoError(t, carts.SetQuantity(ctx, "a", 5))
	assert.Equal(t, 5, carts.Items(ctx)[0].Quantity)

	// Zero removes the line entirely.
	require.NoError(t, carts.SetQuantity(ctx, "a", 0))
	assert.Empty(t, carts.Items(ctx))

	// Negative behaves like zero.
	require.NoError(t, carts.AddItem(ctx, testProduct("a", 10)))
	require.NoError(t, carts.SetQuantity(ctx, "a", -5))
	assert.Empty(t, carts.Items(ctx))
}

func TestCartRemoveAndClear(t *testing.T) {
	carts := NewCartRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, carts.AddItem(ctx, testProduct("a", 10)))
	require.NoError(t, carts.AddItem(ctx, testProduct("b", 20)))

	require.NoError(t, carts.RemoveItem(ctx, "a"))
	items := carts.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	require.NoError(t, carts.Clear(ctx))
	assert.Empty(t, carts.Items(ctx))
	assert.Equal(t, 0, carts.Count(ctx))
}

func TestCartSummary(t *testing.T) {
	carts := NewCartRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, carts.AddItem(ctx, testProduct("a", 40)))
	require.NoError(t, carts.AddItem(ctx, testProduct("a", 40)))
	require.NoError(t, carts.AddItem(ctx, testProduct("b", 10)))

	summary := carts.Summary(ctx)
	assert.Equal(t, int64(90_00), summary.SubtotalCents)
	assert.Equal(t, int64(10_00), summary.ShippingCents)
	assert.Equal(t, int64(7_20), summary.TaxCents)
	assert.Equal(t, int64(107_20), summary.TotalCents)
}

func TestCartSurvivesMalformedRecord(t *testing.T) {
	memory := store.NewMemoryStore()
	carts := NewCartRepository(memory)
	ctx := context.Background()

	memory.SetRaw(store.KeyCart, []byte("][ corrupt"))

	assert.Empty(t, carts.Items(ctx), "malformed blob reads as empty cart")

	// A wrong-typed field inside an otherwise valid array must not surface a
	// partially decoded cart with a ghost line.
	memory.SetRaw(store.KeyCart, []byte(`[{"id":"a","price":1000,"quantity":2},{"id":"b","quantity":"oops"}]`))
	assert.Empty(t, carts.Items(ctx), "partially decodable blob reads as empty cart")
	require.NoError(t, carts.AddItem(ctx, testProduct("a", 10)))
	assert.Len(t, carts.Items(ctx), 1, "next write repairs the record")
}
