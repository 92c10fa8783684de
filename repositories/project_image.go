package repositories

import (
	"github.com/jewelfoundation/admin-api/database"
	"github.com/jewelfoundation/admin-api/models"
	"gorm.io/gorm"
)

// ProjectImageRepository handles database operations for project images
type ProjectImageRepository struct{}

// NewProjectImageRepository creates a new project image repository instance
func NewProjectImageRepository() *ProjectImageRepository {
	return &ProjectImageRepository{}
}

// joined selects image columns plus the project title from the left join.
func (r *ProjectImageRepository) joined() *gorm.DB {
	return database.DB.Model(&models.ProjectImage{}).
		Select("project_images.*, projects.title AS project_title").
		Joins("LEFT JOIN projects ON projects.id = project_images.project_id")
}

// FindAll retrieves all project images enriched with their project title
func (r *ProjectImageRepository) FindAll() ([]models.ProjectImage, error) {
	var images []models.ProjectImage
	result := r.joined().Find(&images)
	return images, result.Error
}

// FindByProjectID retrieves the images of one project
func (r *ProjectImageRepository) FindByProjectID(projectID uint) ([]models.ProjectImage, error) {
	var images []models.ProjectImage
	result := r.joined().Where("project_images.project_id = ?", projectID).Find(&images)
	return images, result.Error
}

// CreateBatch inserts several images for one project in a single transaction
func (r *ProjectImageRepository) CreateBatch(images []models.ProjectImage) ([]models.ProjectImage, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for i := range images {
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return images, err
}

// Delete removes a project image and returns the affected row count
func (r *ProjectImageRepository) Delete(id uint) (int64, error) {
	result := database.DB.Delete(&models.ProjectImage{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// Count counts all project images
func (r *ProjectImageRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.ProjectImage{}).Count(&count)
	return count, result.Error
}
