package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/services"
)

var categoryService = services.NewCategoryService()

// GetCategories returns every category, or a single one when ?id= is given
func GetCategories(c *gin.Context) {
	id, present, responded := queryID(c, "id")
	if responded {
		return
	}

	if present {
		category, err := categoryService.GetCategory(id)
		if err != nil {
			if isNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
		return
	}

	categories, err := categoryService.ListCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory creates a new category
func CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	category, err := categoryService.CreateCategory(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "id": category.ID})
}

// UpdateCategory applies a sparse update to a category
func UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category ID is required"})
		return
	}

	outcome, err := categoryService.UpdateCategory(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondUpdateOutcome(c, outcome, "Category")
}

// DeleteCategory removes a category unless projects still reference it
func DeleteCategory(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category ID is required"})
		return
	}

	outcome, err := categoryService.DeleteCategory(req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondDeleteOutcome(c, outcome, "Category",
		"Category not deleted. It may be linked to projects.")
}
