package routes

import (
	"printcase-backend/handlers/orders"
	"printcase-backend/middleware"

	"github.com/gin-gonic/gin"
)

func OrdersRoutes(r *gin.Engine) {
	r.GET("/api/orders/my-orders", middleware.JWTAuth(), orders.GetMyOrders)
	r.GET("/admin/orders", middleware.AdminAuth(), orders.GetAllOrders)
}
