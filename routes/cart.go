package routes

import (
	"printcase-backend/handlers/cart"
	"printcase-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CartRoutes(r *gin.Engine) {
	cartRoutes := r.Group("/api/cart")
	cartRoutes.Use(middleware.JWTAuth())
	{
		cartRoutes.GET("/", cart.GetCart)
		cartRoutes.POST("/add", cart.AddToCart)
		cartRoutes.POST("/remove", cart.RemoveFromCart)
		cartRoutes.POST("/remove-saved", cart.RemoveFromSaved)
		cartRoutes.POST("/save-for-later", cart.SaveForLater)
		cartRoutes.POST("/move-to-cart", cart.MoveToCart)
	}
}
