package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireUserType rejects requests whose authenticated account type does not
// match. The message is per-route so callers see the same wording the
// frontend expects.
func RequireUserType(userType, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get("user_type")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		if current != userType {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}
		c.Next()
	}
}
