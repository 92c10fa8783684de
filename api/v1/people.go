package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/models"
	"github.com/jewelfoundation/admin-api/services"
)

var personService = services.NewPersonService()

// GetPeople returns people, optionally one by ?id= or filtered by ?type=
func GetPeople(c *gin.Context) {
	id, present, responded := queryID(c, "id")
	if responded {
		return
	}

	if present {
		person, err := personService.GetPerson(id)
		if err != nil {
			if isNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
				return
			}
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, person)
		return
	}

	people, err := personService.ListPeople(models.PersonType(c.Query("type")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, people)
}

// CreatePerson creates a new person profile
func CreatePerson(c *gin.Context) {
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FirstName == "" || req.LastName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First name, last name and type are required"})
		return
	}

	person, err := personService.CreatePerson(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Person created", "id": person.ID})
}

// UpdatePerson applies a sparse update to a person
func UpdatePerson(c *gin.Context) {
	var req dto.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Person ID is required"})
		return
	}

	outcome, err := personService.UpdatePerson(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondUpdateOutcome(c, outcome, "Person")
}

// DeletePerson removes a person
func DeletePerson(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Person ID is required"})
		return
	}

	outcome, err := personService.DeletePerson(req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondDeleteOutcome(c, outcome, "Person", "")
}
