package repositories

import (
	"github.com/jewelfoundation/admin-api/database"
	"github.com/jewelfoundation/admin-api/models"
)

// PersonRepository handles database operations for people
type PersonRepository struct{}

// NewPersonRepository creates a new person repository instance
func NewPersonRepository() *PersonRepository {
	return &PersonRepository{}
}

// FindAll retrieves all people, optionally filtered by type
func (r *PersonRepository) FindAll(personType models.PersonType) ([]models.Person, error) {
	var people []models.Person
	db := database.DB
	if personType != "" {
		db = db.Where("type = ?", personType)
	}
	result := db.Find(&people)
	return people, result.Error
}

// FindByID retrieves a person by their ID
func (r *PersonRepository) FindByID(id uint) (models.Person, error) {
	var person models.Person
	result := database.DB.First(&person, "id = ?", id)
	return person, result.Error
}

// Create inserts a new person into the database
func (r *PersonRepository) Create(person models.Person) (models.Person, error) {
	result := database.DB.Create(&person)
	return person, result.Error
}

// UpdateFields applies a sparse update and returns the affected row count.
// An empty field map issues no write at all.
func (r *PersonRepository) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	result := database.DB.Model(&models.Person{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

// Delete removes a person and returns the affected row count
func (r *PersonRepository) Delete(id uint) (int64, error) {
	result := database.DB.Delete(&models.Person{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// Exists checks if a person exists
func (r *PersonRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Person{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Count counts all people
func (r *PersonRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Person{}).Count(&count)
	return count, result.Error
}
