package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Storefront/models"
)

func cart(lines ...models.CartItem) []models.CartItem { return lines }

func line(priceCents int64, quantity int) models.CartItem {
	return models.CartItem{ID: "p", PriceCents: priceCents, Quantity: quantity}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.CartItem
		subtotal int64
		shipping int64
		tax      int64
		total    int64
	}{
		{
			name:     "below free shipping threshold",
			items:    cart(line(40_00, 2), line(10_00, 1)),
			subtotal: 90_00,
			shipping: 10_00,
			tax:      7_20,
			total:    107_20,
		},
		{
			name:     "above free shipping threshold",
			items:    cart(line(60_00, 2)),
			subtotal: 120_00,
			shipping: 0,
			tax:      9_60,
			total:    129_60,
		},
		{
			name:     "exactly at threshold ships free",
			items:    cart(line(100_00, 1)),
			subtotal: 100_00,
			shipping: 0,
			tax:      8_00,
			total:    108_00,
		},
		{
			name:     "one cent under threshold pays flat fee",
			items:    cart(line(99_99, 1)),
			subtotal: 99_99,
			shipping: 10_00,
			tax:      8_00, // 799.92 rounds half-up
			total:    117_99,
		},
		{
			name:     "empty cart",
			items:    nil,
			subtotal: 0,
			shipping: 10_00,
			tax:      0,
			total:    10_00,
		},
		{
			name:     "zero-price and zero-quantity lines contribute nothing",
			items:    cart(line(0, 3), line(25_00, 0), line(25_00, 1)),
			subtotal: 25_00,
			shipping: 10_00,
			tax:      2_00,
			total:    37_00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Calculate(tt.items)
			assert.Equal(t, tt.subtotal, summary.SubtotalCents, "subtotal")
			assert.Equal(t, tt.shipping, summary.ShippingCents, "shipping")
			assert.Equal(t, tt.tax, summary.TaxCents, "tax")
			assert.Equal(t, tt.total, summary.TotalCents, "total")
		})
	}
}

func TestCalculateTotalIdentity(t *testing.T) {
	carts := [][]models.CartItem{
		nil,
		cart(line(1, 1)),
		cart(line(33_33, 3)),
		cart(line(99_99, 1), line(1, 1)),
		cart(line(12_34, 7), line(56_78, 2), line(9_99, 13)),
	}
	for _, items := range carts {
		summary := Calculate(items)
		assert.Equal(t, summary.TotalCents,
			summary.SubtotalCents+summary.ShippingCents+summary.TaxCents)
	}
}

func TestFreeShippingRemaining(t *testing.T) {
	assert.Equal(t, int64(10_00), Calculate(cart(line(90_00, 1))).FreeShippingRemaining())
	assert.Equal(t, int64(0), Calculate(cart(line(100_00, 1))).FreeShippingRemaining())
	assert.Equal(t, int64(100_00), Calculate(nil).FreeShippingRemaining())
}

func TestToCents(t *testing.T) {
	price := 289.99
	assert.Equal(t, int64(289_99), ToCents(&price))

	// Binary floats that would truncate wrong without rounding.
	price = 0.29
	assert.Equal(t, int64(29), ToCents(&price))

	assert.Equal(t, int64(0), ToCents(nil))

	negative := -5.0
	assert.Equal(t, int64(0), ToCents(&negative))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCents(0))
	assert.Equal(t, "$107.20", FormatCents(107_20))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "-$3.50", FormatCents(-3_50))
}
