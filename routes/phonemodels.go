package routes

import (
	"printcase-backend/handlers/phonemodels"
	"printcase-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PhoneModelsRoutes(r *gin.Engine) {
	r.POST("/api/phone-models/request", phonemodels.RequestPhoneModel)
	r.GET("/api/admin/phone-models/requests", middleware.AdminAuth(), phonemodels.GetAllPhoneModelRequests)
}
