package repository

import (
	"context"

	"Storefront/models"
	"Storefront/pricing"
	"Storefront/store"
)

type FavoriteRepository struct {
	store store.Store
}

func NewFavoriteRepository(s store.Store) *FavoriteRepository {
	return &FavoriteRepository{store: s}
}

func (r *FavoriteRepository) All(ctx context.Context) []models.FavoriteEntry {
	var favorites []models.FavoriteEntry
	r.store.Get(ctx, store.KeyFavorites, &favorites)
	return favorites
}

// Toggle flips the product's membership in the favorites set and reports
// whether the product is a favorite afterwards.
func (r *FavoriteRepository) Toggle(ctx context.Context, product *models.Product) (bool, error) {
	favorites := r.All(ctx)
	for i, favorite := range favorites {
		if favorite.ID == product.ID {
			favorites = append(favorites[:i], favorites[i+1:]...)
			return false, r.store.Set(ctx, store.KeyFavorites, favorites)
		}
	}
	favorites = append(favorites, models.FavoriteEntry{
		ID:         product.ID,
		Name:       product.Name,
		Image:      product.Image(),
		PriceCents: pricing.ToCents(product.Price),
	})
	return true, r.store.Set(ctx, store.KeyFavorites, favorites)
}

// Remove drops the product from the favorites set.
func (r *FavoriteRepository) Remove(ctx context.Context, productID string) error {
	favorites := r.All(ctx)
	kept := favorites[:0]
	for _, favorite := range favorites {
		if favorite.ID != productID {
			kept = append(kept, favorite)
		}
	}
	return r.store.Set(ctx, store.KeyFavorites, kept)
}
