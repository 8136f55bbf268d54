package routes

import (
	"printcase-backend/handlers/products"
	"printcase-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ProductsRoutes(r *gin.Engine) {
	productRoutes := r.Group("/api/products")
	{
		productRoutes.GET("/", products.GetAllProducts)
		productRoutes.GET("/:id", products.GetProductByID)
		productRoutes.POST("/", middleware.AdminAuth(), products.CreateProduct)
		productRoutes.PUT("/:id", middleware.AdminAuth(), products.UpdateProduct)
		productRoutes.DELETE("/:id", middleware.AdminAuth(), products.DeleteProduct)
	}
}
