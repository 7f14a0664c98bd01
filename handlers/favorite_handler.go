package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Storefront/models"
)

// ToggleFavoriteHandler flips a product's membership in the favorites set.
// Without a session the action is recorded as pending, like the cart.
func ToggleFavoriteHandler(c *gin.Context, env *Env) {
	var favoriteReq struct {
		ProductID string `json:"productID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&favoriteReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	product := env.Catalog.FindByID(favoriteReq.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Oops! Product not found",
		})
		return
	}

	if _, ok := sessionEmail(c); !ok {
		_ = env.Sessions.SetPendingAction(c.Request.Context(), models.PendingAction{
			Action:    "favorite",
			ProductID: product.ID,
		})
		c.JSON(http.StatusUnauthorized, gin.H{
			"message":       "You need to login to save favorites",
			"pendingAction": "favorite",
		})
		return
	}

	isFavorite, err := env.Favorites.Toggle(c.Request.Context(), product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update favorites",
			"error":   err.Error(),
		})
		return
	}

	message := "Removed from favorites"
	if isFavorite {
		message = "Added to favorites"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"productID":  product.ID,
		"isFavorite": isFavorite,
	})
}

// GetFavoriteListHandler serves the favorites section of the profile page.
func GetFavoriteListHandler(c *gin.Context, env *Env) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Favorites loaded",
		"favorites": env.Favorites.All(c.Request.Context()),
	})
}

// RemoveFavoriteHandler drops a product from the favorites set.
func RemoveFavoriteHandler(c *gin.Context, env *Env) {
	productID := c.Param("productID")

	if err := env.Favorites.Remove(c.Request.Context(), productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove favorite",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Removed from favorites",
		"productID": productID,
	})
}

// AddFavoriteToCartHandler puts a favorited product in the cart, resolving it
// through the catalog so the cart line carries current product data.
func AddFavoriteToCartHandler(c *gin.Context, env *Env) {
	productID := c.Param("productID")

	product := env.Catalog.FindByID(productID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Oops! Product not found",
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
		"message":   "Added to cart!",
		"productID": product.ID,
		"cartCount": env.Carts.Count(c.Request.Context()),
	})
}
