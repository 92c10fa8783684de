package repositories

import (
	"github.com/jewelfoundation/admin-api/database"
	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/models"
	"gorm.io/gorm"
)

// DonationRepository handles database operations for donations
type DonationRepository struct{}

// NewDonationRepository creates a new donation repository instance
func NewDonationRepository() *DonationRepository {
	return &DonationRepository{}
}

// joined selects donation columns plus the project title from the left join.
func (r *DonationRepository) joined() *gorm.DB {
	return database.DB.Model(&models.Donation{}).
		Select("donations.*, projects.title AS project_title").
		Joins("LEFT JOIN projects ON projects.id = donations.project_id")
}

// FindAll retrieves all donations enriched with their project title
func (r *DonationRepository) FindAll() ([]models.Donation, error) {
	var donations []models.Donation
	result := r.joined().Find(&donations)
	return donations, result.Error
}

// FindByProjectID retrieves all donations for one project
func (r *DonationRepository) FindByProjectID(projectID uint) ([]models.Donation, error) {
	var donations []models.Donation
	result := r.joined().Where("donations.project_id = ?", projectID).Find(&donations)
	return donations, result.Error
}

// FindByID retrieves a donation by its ID
func (r *DonationRepository) FindByID(id uint) (models.Donation, error) {
	var donation models.Donation
	result := r.joined().Where("donations.id = ?", id).First(&donation)
	return donation, result.Error
}

// Create inserts a new donation into the database
func (r *DonationRepository) Create(donation models.Donation) (models.Donation, error) {
	result := database.DB.Create(&donation)
	return donation, result.Error
}

// UpdateFields applies a sparse update and returns the affected row count.
// An empty field map issues no write at all.
func (r *DonationRepository) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	result := database.DB.Model(&models.Donation{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

// Delete removes a donation and returns the affected row count
func (r *DonationRepository) Delete(id uint) (int64, error) {
	result := database.DB.Delete(&models.Donation{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// Exists checks if a donation exists
func (r *DonationRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Donation{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Count counts all donations
func (r *DonationRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Donation{}).Count(&count)
	return count, result.Error
}

// TotalsPerProject sums donation amounts per project in the database,
// joined to the project title for display.
func (r *DonationRepository) TotalsPerProject() ([]dto.ProjectTotal, error) {
	var totals []dto.ProjectTotal
	result := database.DB.Model(&models.Donation{}).
		Select("donations.project_id, projects.title AS project_title, SUM(donations.amount) AS total").
		Joins("LEFT JOIN projects ON projects.id = donations.project_id").
		Group("donations.project_id, projects.title").
		Order("donations.project_id").
		Scan(&totals)
	return totals, result.Error
}

// GroupedByAmount counts donations per distinct amount.
func (r *DonationRepository) GroupedByAmount() ([]dto.AmountCount, error) {
	var groups []dto.AmountCount
	result := database.DB.Model(&models.Donation{}).
		Select("amount, COUNT(*) AS count").
		Group("amount").
		Order("amount").
		Scan(&groups)
	return groups, result.Error
}
