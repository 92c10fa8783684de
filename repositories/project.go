package repositories

import (
	"github.com/jewelfoundation/admin-api/database"
	"github.com/jewelfoundation/admin-api/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// joined selects project columns plus the category name from the left join.
func (r *ProjectRepository) joined() *gorm.DB {
	return database.DB.Model(&models.Project{}).
		Select("projects.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = projects.category_id")
}

// FindAll retrieves all projects enriched with their category name
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := r.joined().Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID enriched with its category name
func (r *ProjectRepository) FindByID(id uint) (models.Project, error) {
	var project models.Project
	result := r.joined().Where("projects.id = ?", id).First(&project)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// UpdateFields applies a sparse update and returns the affected row count.
// An empty field map issues no write at all.
func (r *ProjectRepository) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	result := database.DB.Model(&models.Project{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

// Delete removes a project together with its donations and images.
// Returns the number of project rows removed (0 when the id is unknown).
func (r *ProjectRepository) Delete(id uint) (int64, error) {
	var affected int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Donation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, "id = ?", id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

// Exists checks if a project exists
func (r *ProjectRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CountByCategoryID counts projects referencing a category
func (r *ProjectRepository) CountByCategoryID(categoryID uint) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Project{}).Where("category_id = ?", categoryID).Count(&count)
	return count, result.Error
}

// Count counts all projects
func (r *ProjectRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Project{}).Count(&count)
	return count, result.Error
}
