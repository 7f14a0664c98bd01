package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Storefront/models"
	"Storefront/pricing"
)

// AddToCartHandler puts one unit of a product in the cart. Visitors who are
// not logged in get the action recorded as pending so the client can resume
// it after login, exactly like the product page did.
func AddToCartHandler(c *gin.Context, env *Env) {
	var cartItemReq struct {
		ProductID string `json:"productID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&cartItemReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	product := env.Catalog.FindByID(cartItemReq.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Oops! Product not found",
		})
		return
	}

	if _, ok := sessionEmail(c); !ok {
		_ = env.Sessions.SetPendingAction(c.Request.Context(), models.PendingAction{
			Action:    "cart",
			ProductID: product.ID,
		})
		c.JSON(http.StatusUnauthorized, gin.H{
			"message":       "You need to login to add items to your cart",
			"pendingAction": "cart",
		})
		return
	}

	if err := env.Carts.AddItem(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add item to cart",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Added to cart: " + product.Name,
		"productID": product.ID,
		"cartCount": env.Carts.Count(c.Request.Context()),
	})
}

// UpdateCartItemQuantityHandler sets a line's quantity. Zero or less removes
// the line entirely.
func UpdateCartItemQuantityHandler(c *gin.Context, env *Env) {
	var cartItemReq struct {
		ProductID string `json:"productID" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&cartItemReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	err := env.Carts.SetQuantity(c.Request.Context(), cartItemReq.ProductID, cartItemReq.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update cart",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Cart updated",
		"productID": cartItemReq.ProductID,
		"quantity":  cartItemReq.Quantity,
		"cartCount": env.Carts.Count(c.Request.Context()),
	})
}

// DeleteCartItemHandler removes a line from the cart.
func DeleteCartItemHandler(c *gin.Context, env *Env) {
	productID := c.Param("productID")

	if err := env.Carts.RemoveItem(c.Request.Context(), productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove item from cart",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Removed from cart",
		"productID": productID,
		"cartCount": env.Carts.Count(c.Request.Context()),
	})
}

// ClearCartHandler empties the cart.
func ClearCartHandler(c *gin.Context, env *Env) {
	if err := env.Carts.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to clear cart",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}

// GetCartHandler serves the cart page: the lines plus the computed order
// summary and the free-shipping banner data.
func GetCartHandler(c *gin.Context, env *Env) {
	items := env.Carts.Items(c.Request.Context())
	summary := pricing.Calculate(items)

	lines := make([]gin.H, len(items))
	for i, item := range items {
		lineTotal := item.PriceCents * int64(item.Quantity)
		lines[i] = gin.H{
			"id":               item.ID,
			"name":             item.Name,
			"image":            item.Image,
			"price":            item.PriceCents,
			"priceDisplay":     pricing.FormatCents(item.PriceCents),
			"quantity":         item.Quantity,
			"lineTotal":        lineTotal,
			"lineTotalDisplay": pricing.FormatCents(lineTotal),
		}
	}

	shippingDisplay := pricing.FormatCents(summary.ShippingCents)
	if summary.SubtotalCents > 0 && summary.ShippingCents == 0 {
		shippingDisplay = "FREE"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Cart loaded",
		"items":     lines,
		"cartCount": env.Carts.Count(c.Request.Context()),
		"summary": gin.H{
			"subtotal":        summary.SubtotalCents,
			"shipping":        summary.ShippingCents,
			"tax":             summary.TaxCents,
			"total":           summary.TotalCents,
			"subtotalDisplay": pricing.FormatCents(summary.SubtotalCents),
			"shippingDisplay": shippingDisplay,
			"taxDisplay":      pricing.FormatCents(summary.TaxCents),
			"totalDisplay":    pricing.FormatCents(summary.TotalCents),
		},
		"freeShippingRemaining": summary.FreeShippingRemaining(),
	})
}

// GetCartCountHandler serves the header badge from the subscribed counter.
func GetCartCountHandler(c *gin.Context, env *Env) {
	c.JSON(http.StatusOK, gin.H{
		"cartCount": env.CartCount(),
	})
}
