package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/services"
)

var donationService = services.NewDonationService()

// GetDonations returns donations: all of them, one by ?id=, one project's
// via ?project_id=, or an aggregated view via ?custom=.
func GetDonations(c *gin.Context) {
	switch c.Query("custom") {
	case "group_by_amount":
		groups, err := donationService.GroupedByAmount()
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, groups)
		return
	case "total_per_project":
		totals, err := donationService.TotalsPerProject()
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, totals)
		return
	}

	id, present, responded := queryID(c, "id")
	if responded {
		return
	}
	if present {
		donation, err := donationService.GetDonation(id)
		if err != nil {
			if isNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
				return
			}
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, donation)
		return
	}

	projectID, _, responded := queryID(c, "project_id")
	if responded {
		return
	}

	donations, err := donationService.ListDonations(projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, donations)
}

// CreateDonation records a new donation
func CreateDonation(c *gin.Context) {
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProjectID == 0 || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID and a positive amount are required"})
		return
	}

	donation, err := donationService.CreateDonation(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Donation recorded", "id": donation.ID})
}

// UpdateDonation applies an admin correction to a donation
func UpdateDonation(c *gin.Context) {
	var req dto.UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Donation ID is required"})
		return
	}

	outcome, err := donationService.UpdateDonation(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondUpdateOutcome(c, outcome, "Donation")
}

// DeleteDonation removes a donation
func DeleteDonation(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Donation ID is required"})
		return
	}

	outcome, err := donationService.DeleteDonation(req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondDeleteOutcome(c, outcome, "Donation", "")
}
