// Package catalog loads the static product catalog and answers the page
// queries over it. The catalog is small, so every query is a linear scan of
// the in-memory slice; there is no index and no pagination.
package catalog

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"Storefront/models"
	"Storefront/pricing"
)

type Catalog struct {
	products []models.Product
}

// Load reads the catalog JSON array from path. The file is read once; the
// catalog never changes afterwards.
func Load(path string) (*Catalog, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := json.Unmarshal(blob, &products); err != nil {
		return nil, err
	}
	return &Catalog{products: products}, nil
}

// New wraps an already-decoded product list. Tests build catalogs this way.
func New(products []models.Product) *Catalog {
	return &Catalog{products: products}
}

func (c *Catalog) All() []models.Product {
	return c.products
}

// FindByID returns the product with the given id, or nil.
func (c *Catalog) FindByID(id string) *models.Product {
	for i := range c.products {
		if c.products[i].ID == id {
			return &c.products[i]
		}
	}
	return nil
}

// Search matches the query case-insensitively against name, brand and
// category.
func (c *Catalog) Search(query string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	return c.filter(func(p *models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Brand), query) ||
			strings.Contains(strings.ToLower(p.Category), query)
	})
}

func (c *Catalog) Featured() []models.Product {
	return c.filter(func(p *models.Product) bool { return p.Featured })
}

func (c *Catalog) NonFeatured() []models.Product {
	return c.filter(func(p *models.Product) bool { return !p.Featured })
}

func (c *Catalog) OnSale() []models.Product {
	return c.filter(func(p *models.Product) bool { return p.OnSale })
}

func (c *Catalog) NewArrivals() []models.Product {
	return c.filter(func(p *models.Product) bool { return p.NewArrival })
}

// Trending returns the spotlight bundle shown at the top of the deals page.
func (c *Catalog) Trending() []models.Product {
	return c.filter(func(p *models.Product) bool { return p.Trending })
}

// ByBrand matches the brand name exactly.
func (c *Catalog) ByBrand(brand string) []models.Product {
	return c.filter(func(p *models.Product) bool { return p.Brand == brand })
}

// Brands lists the distinct brand names, sorted.
func (c *Catalog) Brands() []string {
	seen := make(map[string]bool)
	var brands []string
	for i := range c.products {
		brand := c.products[i].Brand
		if brand == "" || seen[brand] {
			continue
		}
		seen[brand] = true
		brands = append(brands, brand)
	}
	sort.Strings(brands)
	return brands
}

// Filter applies the shop page filters: a price ceiling in cents plus optional
// exact category and brand. Products without a price never pass a price
// filter.
func (c *Catalog) Filter(maxPriceCents int64, category, brand string) []models.Product {
	return c.filter(func(p *models.Product) bool {
		if p.Price == nil {
			return false
		}
		if pricing.ToCents(p.Price) > maxPriceCents {
			return false
		}
		if category != "" && p.Category != category {
			return false
		}
		if brand != "" && p.Brand != brand {
			return false
		}
		return true
	})
}

// MaxPriceCents is the slider ceiling: the highest priced product, in cents.
func (c *Catalog) MaxPriceCents() int64 {
	var max int64
	for i := range c.products {
		if cents := pricing.ToCents(c.products[i].Price); cents > max {
			max = cents
		}
	}
	return max
}

func (c *Catalog) filter(keep func(*models.Product) bool) []models.Product {
	var out []models.Product
	for i := range c.products {
		if keep(&c.products[i]) {
			out = append(out, c.products[i])
		}
	}
	return out
}
