package routes

import (
	"printcase-backend/handlers/auth"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", auth.Register)
		authRoutes.POST("/login", auth.Login)
		authRoutes.POST("/forgot-password", auth.ForgotPassword)
		authRoutes.POST("/verify-otp", auth.VerifyOtp)
		authRoutes.POST("/reset-password", auth.ResetPassword)
	}
}
