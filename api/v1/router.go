package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jewelfoundation/admin-api/middleware"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the profile endpoints
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
		authGroup.PUT("/me", middleware.AuthMiddleware(), UpdateCurrentUser)
	}

	// Resource endpoints - protected by AuthMiddleware.
	// Every collection dispatches all four methods on the same path; ids
	// travel in the query string (GET) or the body (PUT/DELETE), matching
	// the admin client's contract.
	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/categories", GetCategories)
		authed.POST("/categories", CreateCategory)
		authed.PUT("/categories", UpdateCategory)
		authed.DELETE("/categories", DeleteCategory)

		authed.GET("/projects", GetProjects)
		authed.POST("/projects", CreateProject)
		authed.PUT("/projects", UpdateProject)
		authed.DELETE("/projects", DeleteProject)
		authed.GET("/projects/analytics", GetProjectAnalytics)

		authed.GET("/donations", GetDonations)
		authed.POST("/donations", CreateDonation)
		authed.PUT("/donations", UpdateDonation)
		authed.DELETE("/donations", DeleteDonation)

		authed.GET("/people", GetPeople)
		authed.POST("/people", CreatePerson)
		authed.PUT("/people", UpdatePerson)
		authed.DELETE("/people", DeletePerson)

		authed.GET("/partners", GetPartners)
		authed.POST("/partners", CreatePartner)
		authed.PUT("/partners", UpdatePartner)
		authed.DELETE("/partners", DeletePartner)

		authed.GET("/project_images", GetProjectImages)
		authed.POST("/project_images", AddProjectImages)
		authed.DELETE("/project_images", DeleteProjectImage)

		authed.GET("/cloud", UploadHealth)
		authed.POST("/cloud", UploadImage)

		authed.GET("/dashboard/summary", GetDashboardSummary)
	}
}
