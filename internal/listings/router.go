package listings

import (
	"campora/internal/shared/config"
	"campora/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers public catalog and admin listing routes
func RegisterRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Public kind-scoped catalog
	for _, entry := range []struct {
		path string
		kind Kind
	}{
		{"/campsites", KindCampsite},
		{"/activities", KindActivity},
		{"/equipment", KindEquipment},
	} {
		group := router.Group(entry.path)
		group.GET("", controller.Browse(entry.kind))
		group.GET("/:id", controller.GetDetail)
	}

	router.GET("/listings/:id/availability", controller.GetAvailability)

	// Admin catalog management
	admin := router.Group("/admin/listings")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.GET("", controller.AdminList)
		admin.POST("", controller.Create)
		admin.GET("/:id", controller.AdminGet)
		admin.PUT("/:id", controller.Update)
		admin.PATCH("/:id/status", controller.UpdateStatus)
		admin.DELETE("/:id", controller.Archive)
		admin.POST("/:id/images", controller.UploadImage)
		admin.DELETE("/:id/images/:imageId", controller.DeleteImage)
	}
}
