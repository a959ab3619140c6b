package router

import (
	"github.com/PhanHoangKe/GooglePhotosClone/internal/handler"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler *handler.Handler
}

func NewRouter(h *handler.Handler) *Router {
	return &Router{handler: h}
}

func (rt *Router) Init(r *gin.Engine) {
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")

	// One limiter instance is shared by every auth route so the budget is
	// counted across login and register together.
	authLimiter := middleware.RateLimit(5, 10)

	registerAuthRoutes(api, authLimiter, rt.handler)
	registerPhotoRoutes(api, rt.handler)
	registerAlbumRoutes(api, rt.handler)
	registerUserRoutes(api, rt.handler)
	registerPublicRoutes(r, rt.handler)
}
