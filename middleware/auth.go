// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"seatwise/utils"

	"github.com/gin-gonic/gin"
)

// ChannelAuthMiddleware guards mutating endpoints with a channel token.
// The token's channel claim is placed in the context for handlers that
// need to know which booking source is acting.
func ChannelAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		channel, err := utils.ExtractChannelFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("channel", channel)
		c.Next()
	}
}
