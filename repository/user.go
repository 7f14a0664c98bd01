package repository

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"Storefront/models"
	"Storefront/store"
)

// ErrEmailTaken is returned by Create when the email is already registered.
var ErrEmailTaken = errors.New("an account with this email already exists")

type UserRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) all(ctx context.Context) []models.User {
	var users []models.User
	r.store.Get(ctx, store.KeyUsers, &users)
	return users
}

// FindByEmail scans for an exact, case-sensitive email match.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) *models.User {
	for _, user := range r.all(ctx) {
		if user.Email == email {
			u := user
			return &u
		}
	}
	return nil
}

// Create registers a new account. The password is bcrypt-hashed before it is
// stored; duplicate emails are rejected.
func (r *UserRepository) Create(ctx context.Context, email, password string) (*models.User, error) {
	users := r.all(ctx)
	for _, user := range users {
		if user.Email == email {
			return nil, ErrEmailTaken
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:     email,
		Password:  string(hashed),
		CreatedAt: time.Now().UTC(),
	}
	users = append(users, user)
	if err := r.store.Set(ctx, store.KeyUsers, users); err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyPassword compares the candidate against the stored bcrypt hash.
func (r *UserRepository) VerifyPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

// UpdatePassword re-hashes and stores a new password for the account.
func (r *UserRepository) UpdatePassword(ctx context.Context, email, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	users := r.all(ctx)
	for i := range users {
		if users[i].Email == email {
			users[i].Password = string(hashed)
			return r.store.Set(ctx, store.KeyUsers, users)
		}
	}
	return errors.New("no such account")
}

// UpdateName stores the display name on the account record.
func (r *UserRepository) UpdateName(ctx context.Context, email, name string) error {
	users := r.all(ctx)
	for i := range users {
		if users[i].Email == email {
			users[i].Name = name
			return r.store.Set(ctx, store.KeyUsers, users)
		}
	}
	return errors.New("no such account")
}
