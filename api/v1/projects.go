package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/services"
)

var (
	projectService   = services.NewProjectService()
	dashboardService = services.NewDashboardService()
)

// GetProjects returns every project, or a single one when ?id= is given.
// Rows carry the joined category name.
func GetProjects(c *gin.Context) {
	id, present, responded := queryID(c, "id")
	if responded {
		return
	}

	if present {
		project, err := projectService.GetProject(id)
		if err != nil {
			if isNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
				return
			}
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, project)
		return
	}

	projects, err := projectService.ListProjects()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// CreateProject creates a new project
func CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	project, err := projectService.CreateProject(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Project created", "id": project.ID})
}

// UpdateProject applies a sparse update to a project
func UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID is required"})
		return
	}

	outcome, err := projectService.UpdateProject(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondUpdateOutcome(c, outcome, "Project")
}

// DeleteProject removes a project together with its donations and images
func DeleteProject(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID is required"})
		return
	}

	outcome, err := projectService.DeleteProject(req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondDeleteOutcome(c, outcome, "Project", "")
}

// GetProjectAnalytics returns the month-bucketed donation series for one project
func GetProjectAnalytics(c *gin.Context) {
	id, present, responded := queryID(c, "id")
	if responded {
		return
	}
	if !present {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID is required"})
		return
	}

	analytics, err := dashboardService.ProjectAnalytics(id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
