package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/jewelfoundation/admin-api/api/v1"
	"github.com/jewelfoundation/admin-api/config"
	"github.com/jewelfoundation/admin-api/database"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize database connection; migrations run inside
	database.Initialize()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Reject unsupported methods on known paths with 405 instead of 404
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// Serve locally stored uploads when no external image host is configured
	uploadDir := config.GetEnv("UPLOAD_DIR", "uploads")
	router.Static("/"+uploadDir, "./"+uploadDir)

	// Register API routes
	v1.RegisterRoutes(router.Group("/api"))

	port := config.GetEnv("PORT", "8080")

	log.Printf("🚀 Jewel admin API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
