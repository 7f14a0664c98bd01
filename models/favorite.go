package models

// FavoriteEntry is a membership-set entry keyed by product id.
type FavoriteEntry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	PriceCents int64  `json:"price"`
}
