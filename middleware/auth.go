package middleware

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"Storefront/jwt"
	"Storefront/repository"
)

// AuthMiddleware resolves the Bearer token into the account email. A missing,
// invalid or revoked token just leaves the request anonymous; gating happens
// in CheckLoginMiddleware.
func AuthMiddleware(secret string, sessions *repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if token == "" || token == authHeader {
			c.Next()
			return
		}

		email, err := jwt.VerifyToken(secret, token)
		if err != nil {
			log.Printf("auth: token rejected: %v", err)
			c.Next()
			return
		}

		// A signed token that was revoked by logout is no longer a session.
		if !sessions.TokenValid(c.Request.Context(), token) {
			c.Next()
			return
		}

		c.Set("Token", token)
		c.Set("Email", email)
		c.Next()
	}
}
