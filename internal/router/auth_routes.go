package router

import (
	"github.com/PhanHoangKe/GooglePhotosClone/internal/handler"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.Handler) {
	api.POST("/register", authLimiter, h.Register)
	api.POST("/login", authLimiter, h.Login)

	api.POST("/logout", middleware.JWTAuth(), h.Logout)
}
