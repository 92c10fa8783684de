package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jewelfoundation/admin-api/models"
	"github.com/jewelfoundation/admin-api/services"
)

var uploadService = services.NewUploadService()

// UploadHealth confirms the upload endpoint is reachable
func UploadHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UploadImage accepts a multipart image and forwards it to the image host.
// The form carries the file under "image" and the kind under "type".
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	kind := models.ImageKind(c.PostForm("type"))

	result, err := uploadService.Upload(fileHeader, kind)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
