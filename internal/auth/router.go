package auth

import (
	"campora/internal/shared/config"
	"campora/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers auth routes
func RegisterRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", controller.Register)
		authGroup.POST("/login", controller.Login)
		authGroup.POST("/refresh", controller.RefreshToken)
		authGroup.POST("/logout", controller.Logout)

		protected := authGroup.Group("")
		protected.Use(middleware.JWTAuthWithConfig(cfg))
		{
			protected.PUT("/change-password", controller.ChangePassword)
			protected.GET("/me", controller.Me)
		}
	}
}
