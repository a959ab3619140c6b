package router

import (
	"github.com/PhanHoangKe/GooglePhotosClone/internal/handler"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAlbumRoutes(api *gin.RouterGroup, h *handler.Handler) {
	albums := api.Group("/albums")
	albums.Use(middleware.JWTAuth())

	albums.GET("", h.ListAlbums)
	albums.POST("", h.CreateAlbum)
	albums.GET("/:id", h.GetAlbum)
}
