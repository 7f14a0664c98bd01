// Package repository gives each persisted entity a typed interface over the
// record store. Every method follows the store's contract: read the whole
// blob, mutate in memory, write the whole blob back.
package repository

import (
	"context"

	"Storefront/models"
	"Storefront/pricing"
	"Storefront/store"
)

type CartRepository struct {
	store store.Store
}

func NewCartRepository(s store.Store) *CartRepository {
	return &CartRepository{store: s}
}

// Items returns the current cart, empty when the record is absent or
// malformed.
func (r *CartRepository) Items(ctx context.Context) []models.CartItem {
	var items []models.CartItem
	r.store.Get(ctx, store.KeyCart, &items)
	return items
}

// AddItem adds one unit of the product: an existing line gains quantity,
// otherwise a new line with quantity 1 is appended. Line ids stay unique.
func (r *CartRepository) AddItem(ctx context.Context, product *models.Product) error {
	items := r.Items(ctx)
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity++
			return r.store.Set(ctx, store.KeyCart, items)
		}
	}
	items = append(items, models.CartItem{
		ID:         product.ID,
		Name:       product.Name,
		PriceCents: pricing.ToCents(product.Price),
		Image:      product.Image(),
		Quantity:   1,
	})
	return r.store.Set(ctx, store.KeyCart, items)
}

// RemoveItem drops the line with the given product id.
func (r *CartRepository) RemoveItem(ctx context.Context, productID string) error {
	items := r.Items(ctx)
	kept := items[:0]
	for _, item := range items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	return r.store.Set(ctx, store.KeyCart, kept)
}

// SetQuantity sets the line to n; n <= 0 removes the line entirely.
func (r *CartRepository) SetQuantity(ctx context.Context, productID string, n int) error {
	if n <= 0 {
		return r.RemoveItem(ctx, productID)
	}
	items := r.Items(ctx)
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = n
			break
		}
	}
	return r.store.Set(ctx, store.KeyCart, items)
}

// Clear overwrites the cart with an empty sequence.
func (r *CartRepository) Clear(ctx context.Context) error {
	return r.store.Set(ctx, store.KeyCart, []models.CartItem{})
}

// Count is the total item count: the sum of line quantities.
func (r *CartRepository) Count(ctx context.Context) int {
	var count int
	for _, item := range r.Items(ctx) {
		if item.Quantity > 0 {
			count += item.Quantity
		}
	}
	return count
}

// Summary computes the order totals for the current cart.
func (r *CartRepository) Summary(ctx context.Context) pricing.Summary {
	return pricing.Calculate(r.Items(ctx))
}
