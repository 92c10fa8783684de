package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/services"
)

var projectImageService = services.NewProjectImageService()

// GetProjectImages returns project images, filtered by ?project_id= when given
func GetProjectImages(c *gin.Context) {
	projectID, _, responded := queryID(c, "project_id")
	if responded {
		return
	}

	images, err := projectImageService.ListImages(projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// AddProjectImages attaches a batch of hosted images to a project
func AddProjectImages(c *gin.Context) {
	var req dto.AddProjectImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProjectID == 0 || len(req.Images) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID and at least one image are required"})
		return
	}

	images, err := projectImageService.AddImages(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Images added",
		"count":   len(images),
	})
}

// DeleteProjectImage removes a project image
func DeleteProjectImage(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image ID is required"})
		return
	}

	outcome, err := projectImageService.DeleteImage(req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondDeleteOutcome(c, outcome, "Image", "")
}
