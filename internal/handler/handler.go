package handler

import (
	"net/http"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/middleware"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/service"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services *service.Services
	blobs    *storage.DiskStore
}

func New(services *service.Services, blobs *storage.DiskStore) *Handler {
	return &Handler{services: services, blobs: blobs}
}

// mustUserID pulls the authenticated user id or aborts with 401. Routes
// behind JWTAuth always have it; the guard covers misconfigured wiring.
func mustUserID(c *gin.Context) (uint, bool) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		c.Abort()
	}
	return id, ok
}
