package router

import (
	"net/http"
	"strings"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/config"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(r *gin.Engine, h *handler.Handler) {
	prefix := strings.TrimSuffix(config.Get().Upload.URLPrefix, "/")
	if prefix == "" {
		prefix = "/storage"
	}
	r.GET(prefix+"/:namespace/:key", h.ServeBlob)

	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
