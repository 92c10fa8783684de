package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/services"
)

var partnerService = services.NewPartnerService()

// GetPartners returns every partner, or a single one when ?id= is given
func GetPartners(c *gin.Context) {
	id, present, responded := queryID(c, "id")
	if responded {
		return
	}

	if present {
		partner, err := partnerService.GetPartner(id)
		if err != nil {
			if isNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
				return
			}
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, partner)
		return
	}

	partners, err := partnerService.ListPartners()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, partners)
}

// CreatePartner creates a new partner
func CreatePartner(c *gin.Context) {
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Partner name is required"})
		return
	}

	partner, err := partnerService.CreatePartner(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Partner created", "id": partner.ID})
}

// UpdatePartner applies a sparse update to a partner
func UpdatePartner(c *gin.Context) {
	var req dto.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Partner ID is required"})
		return
	}

	outcome, err := partnerService.UpdatePartner(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondUpdateOutcome(c, outcome, "Partner")
}

// DeletePartner removes a partner
func DeletePartner(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Partner ID is required"})
		return
	}

	outcome, err := partnerService.DeletePartner(req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondDeleteOutcome(c, outcome, "Partner", "")
}
