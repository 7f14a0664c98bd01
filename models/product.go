package models

// Product is one entry of the static catalog. Catalog records are read-only;
// nothing in the service ever mutates or persists them.
type Product struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Brand        string     `json:"brand"`
	Category     string     `json:"category"`
	Price        *float64   `json:"price"`
	Thumbnail    string     `json:"thumbnail"`
	Images       []string   `json:"images"`
	Description  string     `json:"description"`
	SKU          string     `json:"sku"`
	Rating       float64    `json:"rating"`
	ReviewsCount int        `json:"reviews_count"`
	Materials    []string   `json:"materials"`
	Tags         []string   `json:"tags"`
	Dimensions   Dimensions `json:"dimensions"`
	Weight       string     `json:"weight"`
	Finish       string     `json:"finish"`
	Style        string     `json:"style"`
	Assembly     bool       `json:"assembly_required"`

	Featured   bool `json:"featured"`
	OnSale     bool `json:"is_on_sale"`
	NewArrival bool `json:"is_new_arrival"`
	Trending   bool `json:"in_trend_spotlight"`
}

type Dimensions struct {
	Width  string `json:"width"`
	Depth  string `json:"depth"`
	Height string `json:"height"`
}

// Image returns the primary image, falling back to the thumbnail.
func (p *Product) Image() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.Thumbnail
}
