package dto

import (
	"github.com/jewelfoundation/admin-api/models"
)

// UploadResponse is returned after an image lands on the image host
type UploadResponse struct {
	URL  string           `json:"url"`
	Type models.ImageKind `json:"type"`
}
