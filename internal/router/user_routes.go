package router

import (
	"github.com/PhanHoangKe/GooglePhotosClone/internal/consts"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/handler"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, h *handler.Handler) {
	user := api.Group("/user")
	user.Use(middleware.JWTAuth())

	avatarBodyLimit := middleware.BodyLimit(consts.MaxAvatarFileBytes + 1<<20)
	profileBodyLimit := middleware.BodyLimit(consts.MaxProfileAvatarFileBytes + 1<<20)

	user.GET("/profile", h.GetProfile)
	user.PUT("/profile", profileBodyLimit, h.UpdateProfile)
	user.PATCH("/password", h.UpdatePassword)
	user.PATCH("/avatar", avatarBodyLimit, h.UpdateAvatar)
	user.DELETE("/avatar", h.RemoveAvatar)
	user.DELETE("/account", h.DeleteAccount)
}
