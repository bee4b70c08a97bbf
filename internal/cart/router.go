package cart

import (
	"campora/internal/shared/config"
	"campora/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers cart routes
func RegisterRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	cartGroup := router.Group("/cart")
	cartGroup.Use(middleware.JWTAuthWithConfig(cfg))
	{
		cartGroup.GET("", controller.GetCart)
		cartGroup.POST("/items", controller.AddItem)
		cartGroup.DELETE("/items/:id", controller.RemoveItem)
		cartGroup.DELETE("", controller.ClearCart)
		cartGroup.POST("/checkout", controller.Checkout)
	}
}
