package routes

import (
	"printcase-backend/handlers/pricing"
	"printcase-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PricingRoutes(r *gin.Engine) {
	r.GET("/api/pricing/:type", pricing.GetPricing)

	adminRoutes := r.Group("/api/admin/pricing")
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.GET("/", pricing.GetAllPricing)
		adminRoutes.POST("/initialize", pricing.InitializePricing)
		adminRoutes.PUT("/:type", pricing.UpdatePricing)
		adminRoutes.DELETE("/:type", pricing.DeletePricing)
	}
}
