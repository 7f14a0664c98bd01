package models

import "time"

// Order statuses. Transitions are forward-only and driven by the fulfillment
// endpoint, never by checkout itself.
const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
)

// Order is an immutable snapshot of a checked-out cart plus computed totals.
// Only Status ever changes after creation.
type Order struct {
	ID            string     `json:"id"`
	Date          time.Time  `json:"date"`
	Customer      Customer   `json:"customer"`
	Items         []CartItem `json:"items"`
	SubtotalCents int64      `json:"subtotal"`
	ShippingCents int64      `json:"shipping"`
	TaxCents      int64      `json:"tax"`
	TotalCents    int64      `json:"total"`
	Status        string     `json:"status"`
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CanTransitionTo reports whether moving to next is a legal forward step.
func (o *Order) CanTransitionTo(next string) bool {
	switch o.Status {
	case OrderStatusProcessing:
		return next == OrderStatusShipped
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}
