package repositories

import (
	"github.com/jewelfoundation/admin-api/database"
	"github.com/jewelfoundation/admin-api/models"
)

// PartnerRepository handles database operations for partners
type PartnerRepository struct{}

// NewPartnerRepository creates a new partner repository instance
func NewPartnerRepository() *PartnerRepository {
	return &PartnerRepository{}
}

// FindAll retrieves all partners
func (r *PartnerRepository) FindAll() ([]models.Partner, error) {
	var partners []models.Partner
	result := database.DB.Find(&partners)
	return partners, result.Error
}

// FindByID retrieves a partner by its ID
func (r *PartnerRepository) FindByID(id uint) (models.Partner, error) {
	var partner models.Partner
	result := database.DB.First(&partner, "id = ?", id)
	return partner, result.Error
}

// Create inserts a new partner into the database
func (r *PartnerRepository) Create(partner models.Partner) (models.Partner, error) {
	result := database.DB.Create(&partner)
	return partner, result.Error
}

// UpdateFields applies a sparse update and returns the affected row count.
// An empty field map issues no write at all.
func (r *PartnerRepository) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	result := database.DB.Model(&models.Partner{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

// Delete removes a partner and returns the affected row count
func (r *PartnerRepository) Delete(id uint) (int64, error) {
	result := database.DB.Delete(&models.Partner{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// Exists checks if a partner exists
func (r *PartnerRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Partner{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Count counts all partners
func (r *PartnerRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Partner{}).Count(&count)
	return count, result.Error
}
