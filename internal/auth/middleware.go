package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const contextKey = "authClaims"

// Middleware verifies the bearer token and stores the claims on the request
// context for handlers to read via CurrentUser.
func Middleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c.Request)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid token"})
			c.Abort()
			return
		}

		claims, err := ValidateToken(tokenString, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			c.Abort()
			return
		}

		c.Set(contextKey, claims)
		c.Next()
	}
}

// CurrentUser returns the authenticated username, or "" when the middleware
// did not run.
func CurrentUser(c *gin.Context) string {
	v, ok := c.Get(contextKey)
	if !ok {
		return ""
	}
	claims, ok := v.(*Claims)
	if !ok {
		return ""
	}
	return claims.Username
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
