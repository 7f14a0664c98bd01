package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"Storefront/models"
	"Storefront/store"
)

var ErrAddressNotFound = errors.New("address not found")

type AddressRepository struct {
	store store.Store
}

func NewAddressRepository(s store.Store) *AddressRepository {
	return &AddressRepository{store: s}
}

func (r *AddressRepository) All(ctx context.Context) []models.Address {
	var addresses []models.Address
	r.store.Get(ctx, store.KeyAddresses, &addresses)
	return addresses
}

// Default returns the address flagged as default, or nil.
func (r *AddressRepository) Default(ctx context.Context) *models.Address {
	for _, address := range r.All(ctx) {
		if address.IsDefault {
			a := address
			return &a
		}
	}
	return nil
}

// Create appends a new address. When the new address is the default, the flag
// is cleared from every other record first, keeping at most one default.
func (r *AddressRepository) Create(ctx context.Context, address models.Address) (models.Address, error) {
	address.ID = uuid.NewString()
	addresses := r.All(ctx)
	if address.IsDefault {
		for i := range addresses {
			addresses[i].IsDefault = false
		}
	}
	addresses = append(addresses, address)
	if err := r.store.Set(ctx, store.KeyAddresses, addresses); err != nil {
		return models.Address{}, err
	}
	return address, nil
}

// SetDefault makes the given address the single default.
func (r *AddressRepository) SetDefault(ctx context.Context, id string) error {
	addresses := r.All(ctx)
	found := false
	for i := range addresses {
		addresses[i].IsDefault = addresses[i].ID == id
		if addresses[i].IsDefault {
			found = true
		}
	}
	if !found {
		return ErrAddressNotFound
	}
	return r.store.Set(ctx, store.KeyAddresses, addresses)
}

// Delete removes the address with the given id.
func (r *AddressRepository) Delete(ctx context.Context, id string) error {
	addresses := r.All(ctx)
	kept := addresses[:0]
	for _, address := range addresses {
		if address.ID != id {
			kept = append(kept, address)
		}
	}
	return r.store.Set(ctx, store.KeyAddresses, kept)
}
