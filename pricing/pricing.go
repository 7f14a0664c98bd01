// Package pricing computes order totals from cart lines. All arithmetic is in
// integer cents; dollars only appear at the formatting edge.
package pricing

import (
	"fmt"
	"math"

	"Storefront/models"
)

const (
	// FreeShippingThresholdCents is the subtotal at which shipping becomes
	// free. The boundary itself ships free.
	FreeShippingThresholdCents int64 = 100_00
	// FlatShippingCents is charged below the threshold.
	FlatShippingCents int64 = 10_00
	// TaxRatePercent is the flat tax applied to the subtotal.
	TaxRatePercent int64 = 8
)

// Summary holds the computed totals for a cart.
type Summary struct {
	SubtotalCents int64 `json:"subtotal"`
	ShippingCents int64 `json:"shipping"`
	TaxCents      int64 `json:"tax"`
	TotalCents    int64 `json:"total"`
}

// Calculate runs the subtotal-shipping-tax-total pipeline over the cart.
// Total always equals subtotal+shipping+tax.
func Calculate(items []models.CartItem) Summary {
	var subtotal int64
	for _, item := range items {
		if item.PriceCents <= 0 || item.Quantity <= 0 {
			continue
		}
		subtotal += item.PriceCents * int64(item.Quantity)
	}

	shipping := FlatShippingCents
	if subtotal >= FreeShippingThresholdCents {
		shipping = 0
	}

	// Half-up rounding to the cent.
	tax := (subtotal*TaxRatePercent + 50) / 100

	return Summary{
		SubtotalCents: subtotal,
		ShippingCents: shipping,
		TaxCents:      tax,
		TotalCents:    subtotal + shipping + tax,
	}
}

// FreeShippingRemaining returns how many cents short of free shipping the
// subtotal is, zero once the threshold is reached.
func (s Summary) FreeShippingRemaining() int64 {
	if s.SubtotalCents >= FreeShippingThresholdCents {
		return 0
	}
	return FreeShippingThresholdCents - s.SubtotalCents
}

// ToCents converts a catalog dollar price to cents. A nil price (price upon
// request) is treated as 0, matching the defensive parse of the cart total.
func ToCents(price *float64) int64 {
	if price == nil || *price < 0 || math.IsNaN(*price) || math.IsInf(*price, 0) {
		return 0
	}
	return int64(math.Round(*price * 100))
}

// FormatCents renders cents as a "$X.XX" display string.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
