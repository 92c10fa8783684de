package services

import (
	"fmt"

	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/models"
	"github.com/jewelfoundation/admin-api/repositories"
)

// ProjectImageService handles business logic for project images
type ProjectImageService struct {
	imageRepo   *repositories.ProjectImageRepository
	projectRepo *repositories.ProjectRepository
}

// NewProjectImageService creates a new project image service instance
func NewProjectImageService() *ProjectImageService {
	return &ProjectImageService{
		imageRepo:   repositories.NewProjectImageRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListImages retrieves project images, filtered to one project when
// projectID is non-zero.
func (s *ProjectImageService) ListImages(projectID uint) ([]models.ProjectImage, error) {
	if projectID == 0 {
		return s.imageRepo.FindAll()
	}
	return s.imageRepo.FindByProjectID(projectID)
}

// AddImages attaches a batch of hosted images to a project after checking
// the closed phase/kind tags and the project itself.
func (s *ProjectImageService) AddImages(req dto.AddProjectImagesRequest) ([]models.ProjectImage, error) {
	exists, err := s.projectRepo.Exists(req.ProjectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: project %d does not exist", ErrValidation, req.ProjectID)
	}

	images := make([]models.ProjectImage, 0, len(req.Images))
	for _, in := range req.Images {
		if !models.ValidImagePhase(in.Description) {
			return nil, fmt.Errorf("%w: unknown image description %q", ErrValidation, in.Description)
		}
		if in.Type != "" && !models.ValidImageKind(in.Type) {
			return nil, fmt.Errorf("%w: unknown image type %q", ErrValidation, in.Type)
		}
		images = append(images, models.ProjectImage{
			ProjectID:   req.ProjectID,
			ImageURL:    in.ImageURL,
			Description: in.Description,
			Type:        in.Type,
		})
	}

	return s.imageRepo.CreateBatch(images)
}

// DeleteImage removes a project image
func (s *ProjectImageService) DeleteImage(id uint) (DeleteOutcome, error) {
	affected, err := s.imageRepo.Delete(id)
	if err != nil {
		return DeleteNotFound, err
	}
	if affected == 0 {
		return DeleteNotFound, nil
	}
	return DeleteDone, nil
}
