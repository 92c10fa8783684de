package services

import (
	"fmt"

	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/models"
	"github.com/jewelfoundation/admin-api/repositories"
)

// PersonService handles business logic for supervisor/volunteer/trustee profiles
type PersonService struct {
	personRepo *repositories.PersonRepository
}

// NewPersonService creates a new person service instance
func NewPersonService() *PersonService {
	return &PersonService{
		personRepo: repositories.NewPersonRepository(),
	}
}

// ListPeople retrieves all people, optionally filtered by type
func (s *PersonService) ListPeople(personType models.PersonType) ([]models.Person, error) {
	if personType != "" && !models.ValidPersonType(personType) {
		return nil, fmt.Errorf("%w: unknown person type %q", ErrValidation, personType)
	}
	return s.personRepo.FindAll(personType)
}

// GetPerson retrieves one person by id
func (s *PersonService) GetPerson(id uint) (models.Person, error) {
	return s.personRepo.FindByID(id)
}

// CreatePerson validates the closed type tag and inserts a new profile
func (s *PersonService) CreatePerson(req dto.CreatePersonRequest) (models.Person, error) {
	if !models.ValidPersonType(req.Type) {
		return models.Person{}, fmt.Errorf("%w: unknown person type %q", ErrValidation, req.Type)
	}

	person := models.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Type:      req.Type,
		PhotoURL:  req.PhotoURL,
		IsActive:  req.IsActive,
	}
	return s.personRepo.Create(person)
}

// UpdatePerson applies a sparse update
func (s *PersonService) UpdatePerson(req dto.UpdatePersonRequest) (UpdateOutcome, error) {
	if req.Type != nil && !models.ValidPersonType(*req.Type) {
		return UpdateNotFound, fmt.Errorf("%w: unknown person type %q", ErrValidation, *req.Type)
	}
	fields := req.Fields()
	if len(fields) == 0 {
		return UpdateNoFields, nil
	}
	affected, err := s.personRepo.UpdateFields(req.ID, fields)
	if err != nil {
		return UpdateNotFound, err
	}
	return resolveUpdate(affected, func() (bool, error) {
		return s.personRepo.Exists(req.ID)
	})
}

// DeletePerson removes a person
func (s *PersonService) DeletePerson(id uint) (DeleteOutcome, error) {
	affected, err := s.personRepo.Delete(id)
	if err != nil {
		return DeleteNotFound, err
	}
	if affected == 0 {
		return DeleteNotFound, nil
	}
	return DeleteDone, nil
}
