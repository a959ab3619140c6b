package middleware

import (
	"net/http"
	"strings"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "id"

// ContextToken holds the raw bearer token for logout revocation.
const ContextToken = "token"

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			c.Abort()
			return
		}

		if utils.IsTokenBlacklisted(parts[1]) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token has been revoked"})
			c.Abort()
			return
		}

		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.ID)
		c.Set(ContextToken, parts[1])
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user id set by JWTAuth.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
