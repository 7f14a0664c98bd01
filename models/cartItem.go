package models

// CartItem is one line of the cart. ID matches the product id and is unique
// within the cart; PriceCents is snapshotted from the catalog at add time.
type CartItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price"`
	Image      string `json:"image"`
	Quantity   int    `json:"quantity"`
}
