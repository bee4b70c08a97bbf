package policies

import (
	"campora/internal/shared/config"
	"campora/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers cancellation policy routes
func RegisterRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	router.GET("/listings/:id/cancellation-policy", controller.GetPolicy)

	admin := router.Group("/admin/listings")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.PUT("/:id/cancellation-policy", controller.UpsertPolicy)
	}

	adminReservations := router.Group("/admin/reservations")
	adminReservations.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		adminReservations.GET("/:id/refunds", controller.ListRefunds)
	}
}
