package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"Storefront/models"
	"Storefront/repository"
)

// CreateAddressHandler saves a new address. A new default clears the flag
// from every other record.
func CreateAddressHandler(c *gin.Context, env *Env) {
	var addressReq models.Address
	if err := c.ShouldBindJSON(&addressReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	if strings.TrimSpace(addressReq.Label) == "" ||
		strings.TrimSpace(addressReq.FullName) == "" ||
		strings.TrimSpace(addressReq.Street) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please fill in all required fields",
		})
		return
	}

	address, err := env.Addresses.Create(c.Request.Context(), addressReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to save address",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Address saved successfully!",
		"address": address,
	})
}

// GetAddressListHandler serves the saved addresses.
func GetAddressListHandler(c *gin.Context, env *Env) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Addresses loaded",
		"addresses": env.Addresses.All(c.Request.Context()),
	})
}

// SetDefaultAddressHandler makes one address the single default.
func SetDefaultAddressHandler(c *gin.Context, env *Env) {
	addressID := c.Param("addressID")

	if err := env.Addresses.SetDefault(c.Request.Context(), addressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Address not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update default address",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Default address updated",
	})
}

// DeleteAddressHandler removes an address.
func DeleteAddressHandler(c *gin.Context, env *Env) {
	addressID := c.Param("addressID")

	if err := env.Addresses.Delete(c.Request.Context(), addressID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete address",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address deleted",
	})
}
