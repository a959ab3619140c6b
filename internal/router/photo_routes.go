package router

import (
	"github.com/PhanHoangKe/GooglePhotosClone/internal/consts"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/handler"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/middleware"

	"github.com/gin-gonic/gin"
)

// uploadBodyCeiling bounds the whole multipart body of a full batch. The
// extra mebibyte absorbs part headers and field boundaries.
const uploadBodyCeiling = consts.MaxUploadBatchFiles*consts.MaxPhotoFileBytes + 1<<20

func registerPhotoRoutes(api *gin.RouterGroup, h *handler.Handler) {
	photos := api.Group("/photos")
	photos.Use(middleware.JWTAuth())

	uploadLimiter := middleware.RateLimit(2, 5)

	photos.GET("", h.ListPhotos)
	photos.POST("", uploadLimiter, middleware.BodyLimit(uploadBodyCeiling), h.UploadPhotos)
	photos.DELETE("/:id", h.DeletePhoto)

	trash := api.Group("/trash")
	trash.Use(middleware.JWTAuth())

	trash.GET("", h.ListTrash)
	trash.POST("/:id/restore", h.RestorePhoto)
	trash.DELETE("/:id", h.PurgePhoto)
}
