package reservations

import (
	"campora/internal/shared/config"
	"campora/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers reservation routes
func RegisterRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	authed := router.Group("")
	authed.Use(middleware.JWTAuthWithConfig(cfg))
	{
		authed.POST("/reservations/quote", controller.Quote)
		authed.POST("/reservations", controller.Create)
		authed.GET("/reservations/:id", controller.GetByID)
		authed.POST("/reservations/:id/cancel", controller.Cancel)
		authed.GET("/users/reservations", controller.ListMine)
	}

	admin := router.Group("/admin/reservations")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.GET("", controller.AdminList)
		admin.POST("/:id/approve", controller.Approve)
		admin.POST("/:id/reject", controller.Reject)
	}
}
