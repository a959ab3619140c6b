package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders sets the standard hardening response headers.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		// Images may come from data:/blob: URLs in the gallery view.
		c.Header("Content-Security-Policy", "default-src 'self'; img-src 'self' data: blob:; media-src 'self' blob:; style-src 'self' 'unsafe-inline'; script-src 'self';")
		c.Next()
	}
}
