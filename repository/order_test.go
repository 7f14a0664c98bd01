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

func testOrder(id string) models.Order {
	return models.Order{
		ID:   id,
		Date: time.Now().UTC(),
		Customer: models.Customer{
			Name:    "Ada Lovelace",
			Email:   "ada@example.com",
			Address: "12 Analytical St, London, N1 7AA",
		},
		Items: []models.CartItem{
			{ID: "crp-001", Name: "Heritage Medallion Rug", PriceCents: 289_99, Quantity: 1},
		},
		SubtotalCents: 289_99,
		ShippingCents: 0,
		TaxCents:      23_20,
		TotalCents:    313_19,
		Status:        models.OrderStatusProcessing,
	}
}

func TestOrderPrependListsNewestFirst(t *testing.T) {
	orders := NewOrderRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, orders.Prepend(ctx, testOrder("ORD-1111")))
	require.NoError(t, orders.Prepend(ctx, testOrder("ORD-2222")))

	all := orders.All(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "ORD-2222", all[0].ID)
	assert.Equal(t, "ORD-1111", all[1].ID)

	require.NotNil(t, orders.FindByID(ctx, "ORD-1111"))
	assert.Nil(t, orders.FindByID(ctx, "ORD-9999"))
}

func TestOrderStatusForwardOnly(t *testing.T) {
	orders := NewOrderRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, orders.Prepend(ctx, testOrder("ORD-1111")))

	// Processing may not skip straight to Delivered.
	_, err := orders.UpdateStatus(ctx, "ORD-1111", models.OrderStatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	updated, err := orders.UpdateStatus(ctx, "ORD-1111", models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	updated, err = orders.UpdateStatus(ctx, "ORD-1111", models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)

	// Delivered is terminal.
	_, err = orders.UpdateStatus(ctx, "ORD-1111", models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderStatusValidation(t *testing.T) {
	orders := NewOrderRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, orders.Prepend(ctx, testOrder("ORD-1111")))

	_, err := orders.UpdateStatus(ctx, "ORD-1111", "Cancelled")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = orders.UpdateStatus(ctx, "ORD-9999", models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderSnapshotUnchangedByStatusUpdate(t *testing.T) {
	orders := NewOrderRepository(store.NewMemoryStore())
	ctx := context.Background()

	placed := testOrder("ORD-1111")
	require.NoError(t, orders.Prepend(ctx, placed))

	updated, err := orders.UpdateStatus(ctx, "ORD-1111", models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, placed.TotalCents, updated.TotalCents)
	assert.Equal(t, placed.Customer, updated.Customer)
	assert.Equal(t, placed.Items, updated.Items)
}
