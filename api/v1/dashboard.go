package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboardSummary returns counts, donation totals and the recent
// donations strip. ?project_id= narrows the donation figures to one project.
func GetDashboardSummary(c *gin.Context) {
	projectID, _, responded := queryID(c, "project_id")
	if responded {
		return
	}

	summary, err := dashboardService.Summary(projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
