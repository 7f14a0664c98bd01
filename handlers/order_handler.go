package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"Storefront/models"
	"Storefront/pricing"
	"Storefront/repository"
)

func generateOrderID() string {
	return "ORD" + strings.ToUpper(uuid.NewString()[:8])
}

// GetCheckoutPrefillHandler fills the checkout form the way the cart page
// did: session email, profile name (falling back to the session name) and the
// default address as a single line.
func GetCheckoutPrefillHandler(c *gin.Context, env *Env) {
	user := env.Sessions.CurrentUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "You need to login first",
		})
		return
	}

	name := env.Profiles.Get(c.Request.Context()).DisplayName()
	if name == "" {
		name = user.Name
	}

	address := ""
	if defaultAddress := env.Addresses.Default(c.Request.Context()); defaultAddress != nil {
		address = defaultAddress.Oneline()
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout prefill loaded",
		"name":    name,
		"email":   user.Email,
		"address": address,
	})
}

// SendOrderHandler places an order: it validates the customer fields,
// recomputes the totals from the stored cart (client-sent amounts are never
// trusted), snapshots the cart into an immutable order and clears the cart.
// Visitors who are not logged in get the checkout recorded as pending.
func SendOrderHandler(c *gin.Context, env *Env) {
	if _, ok := sessionEmail(c); !ok {
		_ = env.Sessions.SetPendingCheckout(c.Request.Context())
		c.JSON(http.StatusUnauthorized, gin.H{
			"message":         "You need to login to checkout",
			"pendingCheckout": true,
		})
		return
	}

	var orderReq struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&orderReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	orderReq.Name = strings.TrimSpace(orderReq.Name)
	orderReq.Email = strings.TrimSpace(orderReq.Email)
	orderReq.Address = strings.TrimSpace(orderReq.Address)

	if orderReq.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please enter your name",
		})
		return
	}
	if orderReq.Email == "" || !isValidEmail(orderReq.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please enter a valid email address",
		})
		return
	}
	if orderReq.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Please enter your address",
		})
		return
	}

	items := env.Carts.Items(c.Request.Context())
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Your cart is empty!",
		})
		return
	}

	summary := pricing.Calculate(items)
	order := models.Order{
		ID:   generateOrderID(),
		Date: time.Now().UTC(),
		Customer: models.Customer{
			Name:    orderReq.Name,
			Email:   orderReq.Email,
			Address: orderReq.Address,
		},
		Items:         items,
		SubtotalCents: summary.SubtotalCents,
		ShippingCents: summary.ShippingCents,
		TaxCents:      summary.TaxCents,
		TotalCents:    summary.TotalCents,
		Status:        models.OrderStatusProcessing,
	}

	if err := env.Orders.Prepend(c.Request.Context(), order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to place order",
			"error":   err.Error(),
		})
		return
	}

	if err := env.Carts.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Order placed, but failed to clear the cart",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order #" + order.ID + " placed successfully!",
		"orderID": order.ID,
		"total":   summary.TotalCents,
	})
}

// GetOrderListHandler serves the order history, newest first.
func GetOrderListHandler(c *gin.Context, env *Env) {
	orders := env.Orders.All(c.Request.Context())

	orderList := make([]gin.H, len(orders))
	for i, order := range orders {
		orderList[i] = gin.H{
			"orderID":      order.ID,
			"date":         order.Date,
			"itemCount":    len(order.Items),
			"total":        order.TotalCents,
			"totalDisplay": pricing.FormatCents(order.TotalCents),
			"status":       order.Status,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Orders loaded",
		"orderList": orderList,
	})
}

// GetOrderDataHandler serves one order in full.
func GetOrderDataHandler(c *gin.Context, env *Env) {
	orderID := c.Param("orderID")

	order := env.Orders.FindByID(c.Request.Context(), orderID)
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order loaded",
		"order":   order,
	})
}

// UpdateOrderStatusHandler advances an order's status. The route is guarded
// by the fulfillment key; shoppers cannot transition their own orders.
func UpdateOrderStatusHandler(c *gin.Context, env *Env) {
	orderID := c.Param("orderID")

	var statusReq struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&statusReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	order, err := env.Orders.UpdateStatus(c.Request.Context(), orderID, statusReq.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Order not found",
			})
		case errors.Is(err, repository.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"message": "Invalid status transition",
				"error":   err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to update order status",
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"orderID": order.ID,
		"status":  order.Status,
	})
}
