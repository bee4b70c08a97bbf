package reviews

import (
	"campora/internal/shared/config"
	"campora/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers review routes
func RegisterRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	router.GET("/listings/:id/reviews", controller.ListByListing)

	authed := router.Group("/listings/:id/reviews")
	authed.Use(middleware.JWTAuthWithConfig(cfg))
	{
		authed.POST("", controller.Create)
	}

	admin := router.Group("/admin/reviews")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.DELETE("/:id", controller.AdminDelete)
	}
}
