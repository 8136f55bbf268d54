package main

import (
	"log"
	"os"

	"printcase-backend/db"
	_ "printcase-backend/docs"
	"printcase-backend/routes"
	"printcase-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title PrintCase Backend API
// @version 1.0
// @description API for the custom-print storefront (phone cases, t-shirts)
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Design image uploads will not work properly.")
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
