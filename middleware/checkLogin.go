package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckLoginMiddleware aborts requests that did not present a valid session.
func CheckLoginMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get("Email")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "You need to login first",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
