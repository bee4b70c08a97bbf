package analytics

import (
	"campora/internal/shared/config"
	"campora/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers admin analytics routes
func RegisterRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	admin := router.Group("/admin/analytics")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.GET("/dashboard", controller.Dashboard)
		admin.GET("/revenue", controller.Revenue)
		admin.GET("/occupancy", controller.Occupancy)
		admin.GET("/reservations/daily", controller.DailyReservations)
	}
}
