package services

import (
	"fmt"
	"time"

	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/models"
	"github.com/jewelfoundation/admin-api/repositories"
)

// DonationService handles business logic for donations
type DonationService struct {
	donationRepo *repositories.DonationRepository
	projectRepo  *repositories.ProjectRepository
}

// NewDonationService creates a new donation service instance
func NewDonationService() *DonationService {
	return &DonationService{
		donationRepo: repositories.NewDonationRepository(),
		projectRepo:  repositories.NewProjectRepository(),
	}
}

// ListDonations retrieves donations, filtered to one project when projectID
// is non-zero.
func (s *DonationService) ListDonations(projectID uint) ([]models.Donation, error) {
	if projectID == 0 {
		return s.donationRepo.FindAll()
	}
	return s.donationRepo.FindByProjectID(projectID)
}

// GetDonation retrieves one donation by id
func (s *DonationService) GetDonation(id uint) (models.Donation, error) {
	return s.donationRepo.FindByID(id)
}

// CreateDonation validates and records a donation. The referenced project
// must exist; donation_date defaults to today when omitted.
func (s *DonationService) CreateDonation(req dto.CreateDonationRequest) (models.Donation, error) {
	exists, err := s.projectRepo.Exists(req.ProjectID)
	if err != nil {
		return models.Donation{}, err
	}
	if !exists {
		return models.Donation{}, fmt.Errorf("%w: project %d does not exist", ErrValidation, req.ProjectID)
	}

	donation := models.Donation{
		ProjectID:    req.ProjectID,
		DonorName:    req.DonorName,
		Amount:       req.Amount,
		DonationDate: time.Now(),
	}
	if req.DonationDate != nil {
		t, err := dto.ParseDate(*req.DonationDate)
		if err != nil {
			return models.Donation{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		donation.DonationDate = t
	}

	return s.donationRepo.Create(donation)
}

// UpdateDonation applies an admin correction
func (s *DonationService) UpdateDonation(req dto.UpdateDonationRequest) (UpdateOutcome, error) {
	fields, err := req.Fields()
	if err != nil {
		return UpdateNotFound, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if len(fields) == 0 {
		return UpdateNoFields, nil
	}
	affected, err := s.donationRepo.UpdateFields(req.ID, fields)
	if err != nil {
		return UpdateNotFound, err
	}
	return resolveUpdate(affected, func() (bool, error) {
		return s.donationRepo.Exists(req.ID)
	})
}

// DeleteDonation removes a donation
func (s *DonationService) DeleteDonation(id uint) (DeleteOutcome, error) {
	affected, err := s.donationRepo.Delete(id)
	if err != nil {
		return DeleteNotFound, err
	}
	if affected == 0 {
		return DeleteNotFound, nil
	}
	return DeleteDone, nil
}

// TotalsPerProject returns the database-side per-project donation sums
func (s *DonationService) TotalsPerProject() ([]dto.ProjectTotal, error) {
	return s.donationRepo.TotalsPerProject()
}

// GroupedByAmount returns the database-side per-amount donation counts
func (s *DonationService) GroupedByAmount() ([]dto.AmountCount, error) {
	return s.donationRepo.GroupedByAmount()
}
