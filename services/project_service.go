package services

import (
	"fmt"

	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/models"
	"github.com/jewelfoundation/admin-api/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListProjects retrieves all projects with their category names
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.projectRepo.FindAll()
}

// GetProject retrieves one project by id with its category name
func (s *ProjectService) GetProject(id uint) (models.Project, error) {
	return s.projectRepo.FindByID(id)
}

// CreateProject validates and inserts a new project. Omitted optional fields
// stay NULL in the database.
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest) (models.Project, error) {
	project := models.Project{
		Title:          req.Title,
		Description:    req.Description,
		CategoryID:     req.CategoryID,
		TargetDonation: req.TargetDonation,
	}

	if req.StartDate != nil {
		t, err := dto.ParseDate(*req.StartDate)
		if err != nil {
			return models.Project{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		project.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := dto.ParseDate(*req.EndDate)
		if err != nil {
			return models.Project{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		project.EndDate = &t
	}

	return s.projectRepo.Create(project)
}

// UpdateProject applies a sparse update
func (s *ProjectService) UpdateProject(req dto.UpdateProjectRequest) (UpdateOutcome, error) {
	fields, err := req.Fields()
	if err != nil {
		return UpdateNotFound, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if len(fields) == 0 {
		return UpdateNoFields, nil
	}
	affected, err := s.projectRepo.UpdateFields(req.ID, fields)
	if err != nil {
		return UpdateNotFound, err
	}
	return resolveUpdate(affected, func() (bool, error) {
		return s.projectRepo.Exists(req.ID)
	})
}

// DeleteProject removes a project and cascades to its donations and images.
// Deleting an already-gone project reports DeleteNotFound, never an error.
func (s *ProjectService) DeleteProject(id uint) (DeleteOutcome, error) {
	affected, err := s.projectRepo.Delete(id)
	if err != nil {
		return DeleteNotFound, err
	}
	if affected == 0 {
		return DeleteNotFound, nil
	}
	return DeleteDone, nil
}
