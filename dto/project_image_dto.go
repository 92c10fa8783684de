package dto

import (
	"github.com/jewelfoundation/admin-api/models"
)

// ProjectImageInput is one image in a batch add
type ProjectImageInput struct {
	ImageURL    string            `json:"image_url" binding:"required"`
	Description models.ImagePhase `json:"description" binding:"required"`
	Type        models.ImageKind  `json:"type"`
}

// AddProjectImagesRequest attaches one or more hosted images to a project
type AddProjectImagesRequest struct {
	ProjectID uint                `json:"project_id" binding:"required"`
	Images    []ProjectImageInput `json:"images" binding:"required,min=1"`
}
