package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"Storefront/pricing"
)

// GetProductListHandler serves the shop grid: the featured strip plus the
// rest, and the price ceiling the filter slider starts at.
func GetProductListHandler(c *gin.Context, env *Env) {
	c.JSON(http.StatusOK, gin.H{
		"message":       "Products loaded",
		"featured":      productViews(env.Catalog.Featured()),
		"products":      productViews(env.Catalog.NonFeatured()),
		"maxPriceCents": env.Catalog.MaxPriceCents(),
	})
}

// SearchProductsHandler matches ?query= case-insensitively against product
// name, brand and category.
func SearchProductsHandler(c *gin.Context, env *Env) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please enter a search term",
		})
		return
	}

	results := env.Catalog.Search(query)
	c.JSON(http.StatusOK, gin.H{
		"message":    "Search complete",
		"query":      query,
		"products":   productViews(results),
		"totalCount": len(results),
	})
}

// GetDealsHandler serves the deals page sections: the trend spotlight bundle
// and everything on sale.
func GetDealsHandler(c *gin.Context, env *Env) {
	c.JSON(http.StatusOK, gin.H{
		"message":       "Deals loaded",
		"specialBundle": productViews(env.Catalog.Trending()),
		"onSale":        productViews(env.Catalog.OnSale()),
	})
}

// GetBrandListHandler lists the distinct brands; with ?brand= it returns that
// brand's products instead (the brands page after a card click).
func GetBrandListHandler(c *gin.Context, env *Env) {
	brand := c.Query("brand")
	if brand == "" {
		c.JSON(http.StatusOK, gin.H{
			"message": "Brands loaded",
			"brands":  env.Catalog.Brands(),
		})
		return
	}

	products := env.Catalog.ByBrand(brand)
	c.JSON(http.StatusOK, gin.H{
		"message":    "Brand products loaded",
		"brand":      brand,
		"products":   productViews(products),
		"totalCount": len(products),
	})
}

// FilterProductsHandler applies the shop filters: a max price in dollars plus
// optional exact category and brand.
func FilterProductsHandler(c *gin.Context, env *Env) {
	maxPriceCents := env.Catalog.MaxPriceCents()
	if raw := c.Query("maxPrice"); raw != "" {
		dollars, err := strconv.ParseFloat(raw, 64)
		if err != nil || dollars < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid maxPrice",
			})
			return
		}
		maxPriceCents = pricing.ToCents(&dollars)
	}

	products := env.Catalog.Filter(maxPriceCents, c.Query("category"), c.Query("brand"))
	c.JSON(http.StatusOK, gin.H{
		"message":    "Products filtered",
		"products":   productViews(products),
		"totalCount": len(products),
	})
}

// GetProductDataHandler serves the product detail page.
func GetProductDataHandler(c *gin.Context, env *Env) {
	productID := c.Param("productID")

	product := env.Catalog.FindByID(productID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message":  "Oops! Product not found",
			"backLink": backLink(c),
		})
		return
	}

	view := productView(product)
	view["images"] = product.Images
	view["description"] = product.Description
	view["sku"] = product.SKU
	view["dimensions"] = product.Dimensions
	view["weight"] = product.Weight
	view["finish"] = product.Finish
	view["style"] = product.Style
	view["assembly_required"] = product.Assembly
	view["materials"] = product.Materials
	view["tags"] = product.Tags

	c.JSON(http.StatusOK, gin.H{
		"message":  "Product loaded",
		"product":  view,
		"backLink": backLink(c),
	})
}

// backLink preserves the navigation contract: product pages link back to the
// brand or deals page they were reached from, defaulting to the shop.
func backLink(c *gin.Context) string {
	if brand := c.Query("fromBrand"); brand != "" {
		return "/brands?brand=" + brand
	}
	if c.Query("fromDeals") == "true" {
		return "/deals"
	}
	return "/shop"
}
