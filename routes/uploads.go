package routes

import (
	"printcase-backend/handlers/uploads"
	"printcase-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UploadsRoutes(r *gin.Engine) {
	r.POST("/api/upload/design", middleware.JWTAuth(), uploads.UploadDesign)
}
