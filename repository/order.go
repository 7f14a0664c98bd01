package repository

import (
	"context"
	"errors"
	"fmt"

	"Storefront/models"
	"Storefront/store"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type OrderRepository struct {
	store store.Store
}

func NewOrderRepository(s store.Store) *OrderRepository {
	return &OrderRepository{store: s}
}

// All returns the order history, newest first.
func (r *OrderRepository) All(ctx context.Context) []models.Order {
	var orders []models.Order
	r.store.Get(ctx, store.KeyOrders, &orders)
	return orders
}

// FindByID returns the order with the given id, or nil.
func (r *OrderRepository) FindByID(ctx context.Context, id string) *models.Order {
	for _, order := range r.All(ctx) {
		if order.ID == id {
			o := order
			return &o
		}
	}
	return nil
}

// Prepend inserts a freshly placed order at the head of the history, so the
// newest order always lists first.
func (r *OrderRepository) Prepend(ctx context.Context, order models.Order) error {
	orders := append([]models.Order{order}, r.All(ctx)...)
	return r.store.Set(ctx, store.KeyOrders, orders)
}

// UpdateStatus advances an order along Processing -> Shipped -> Delivered.
// Any other move is rejected; the snapshot itself never changes.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	switch status {
	case models.OrderStatusShipped, models.OrderStatusDelivered:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	orders := r.All(ctx)
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if !orders[i].CanTransitionTo(status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, orders[i].Status, status)
		}
		orders[i].Status = status
		if err := r.store.Set(ctx, store.KeyOrders, orders); err != nil {
			return nil, err
		}
		o := orders[i]
		return &o, nil
	}
	return nil, ErrOrderNotFound
}
