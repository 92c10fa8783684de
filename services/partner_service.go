package services

import (
	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/models"
	"github.com/jewelfoundation/admin-api/repositories"
)

// PartnerService handles business logic for partner organizations
type PartnerService struct {
	partnerRepo *repositories.PartnerRepository
}

// NewPartnerService creates a new partner service instance
func NewPartnerService() *PartnerService {
	return &PartnerService{
		partnerRepo: repositories.NewPartnerRepository(),
	}
}

// ListPartners retrieves all partners
func (s *PartnerService) ListPartners() ([]models.Partner, error) {
	return s.partnerRepo.FindAll()
}

// GetPartner retrieves one partner by id
func (s *PartnerService) GetPartner(id uint) (models.Partner, error) {
	return s.partnerRepo.FindByID(id)
}

// CreatePartner validates and inserts a new partner
func (s *PartnerService) CreatePartner(req dto.CreatePartnerRequest) (models.Partner, error) {
	partner := models.Partner{
		Name:       req.Name,
		LogoURL:    req.LogoURL,
		WebsiteURL: req.WebsiteURL,
	}
	return s.partnerRepo.Create(partner)
}

// UpdatePartner applies a sparse update
func (s *PartnerService) UpdatePartner(req dto.UpdatePartnerRequest) (UpdateOutcome, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return UpdateNoFields, nil
	}
	affected, err := s.partnerRepo.UpdateFields(req.ID, fields)
	if err != nil {
		return UpdateNotFound, err
	}
	return resolveUpdate(affected, func() (bool, error) {
		return s.partnerRepo.Exists(req.ID)
	})
}

// DeletePartner removes a partner
func (s *PartnerService) DeletePartner(id uint) (DeleteOutcome, error) {
	affected, err := s.partnerRepo.Delete(id)
	if err != nil {
		return DeleteNotFound, err
	}
	if affected == 0 {
		return DeleteNotFound, nil
	}
	return DeleteDone, nil
}
