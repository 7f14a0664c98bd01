package repository

import (
	"context"

	"Storefront/models"
	"Storefront/store"
)

type ProfileRepository struct {
	store store.Store
}

func NewProfileRepository(s store.Store) *ProfileRepository {
	return &ProfileRepository{store: s}
}

// Get returns the stored profile details, zero-valued when unset.
func (r *ProfileRepository) Get(ctx context.Context) models.ProfileData {
	var profile models.ProfileData
	r.store.Get(ctx, store.KeyProfileData, &profile)
	return profile
}

// Save overwrites the profile blob wholesale.
func (r *ProfileRepository) Save(ctx context.Context, profile models.ProfileData) error {
	return r.store.Set(ctx, store.KeyProfileData, profile)
}
