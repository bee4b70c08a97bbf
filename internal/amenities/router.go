package amenities

import (
	"campora/internal/shared/config"
	"campora/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers amenity routes
func RegisterRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	public := router.Group("/amenities")
	{
		public.GET("", controller.List)
		public.GET("/:slug", controller.GetBySlug)
	}

	admin := router.Group("/admin/amenities")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.POST("", controller.Create)
		admin.PUT("/:id", controller.Update)
		admin.DELETE("/:id", controller.Delete)
	}
}
