package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckFulfillmentKeyMiddleware guards the order status transition endpoint.
// Status changes come from the fulfillment side, authenticated by a shared
// key, never from the shopper's own session.
func CheckFulfillmentKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Fulfillment updates are not enabled",
			})
			c.Abort()
			return
		}

		presented := c.GetHeader("X-Fulfillment-Key")
		if subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Invalid fulfillment key",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
