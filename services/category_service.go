package services

import (
	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/models"
	"github.com/jewelfoundation/admin-api/repositories"
)

// CategoryService handles business logic for categories
type CategoryService struct {
	categoryRepo *repositories.CategoryRepository
	projectRepo  *repositories.ProjectRepository
}

// NewCategoryService creates a new category service instance
func NewCategoryService() *CategoryService {
	return &CategoryService{
		categoryRepo: repositories.NewCategoryRepository(),
		projectRepo:  repositories.NewProjectRepository(),
	}
}

// ListCategories retrieves all categories
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.FindAll()
}

// GetCategory retrieves one category by id
func (s *CategoryService) GetCategory(id uint) (models.Category, error) {
	return s.categoryRepo.FindByID(id)
}

// CreateCategory validates and inserts a new category
func (s *CategoryService) CreateCategory(req dto.CreateCategoryRequest) (models.Category, error) {
	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	return s.categoryRepo.Create(category)
}

// UpdateCategory applies a sparse update
func (s *CategoryService) UpdateCategory(req dto.UpdateCategoryRequest) (UpdateOutcome, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return UpdateNoFields, nil
	}
	affected, err := s.categoryRepo.UpdateFields(req.ID, fields)
	if err != nil {
		return UpdateNotFound, err
	}
	return resolveUpdate(affected, func() (bool, error) {
		return s.categoryRepo.Exists(req.ID)
	})
}

// DeleteCategory removes a category unless any project still references it.
// The guard lives here, not in a database constraint.
func (s *CategoryService) DeleteCategory(id uint) (DeleteOutcome, error) {
	linked, err := s.projectRepo.CountByCategoryID(id)
	if err != nil {
		return DeleteNotFound, err
	}
	if linked > 0 {
		return DeleteBlocked, nil
	}

	affected, err := s.categoryRepo.Delete(id)
	if err != nil {
		return DeleteNotFound, err
	}
	if affected == 0 {
		return DeleteNotFound, nil
	}
	return DeleteDone, nil
}
