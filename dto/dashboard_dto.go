package dto

import (
	"github.com/jewelfoundation/admin-api/aggregate"
	"github.com/jewelfoundation/admin-api/models"
)

// DashboardCounts holds the per-entity row counts shown on the landing cards
type DashboardCounts struct {
	Projects  int64 `json:"projects"`
	Donations int64 `json:"donations"`
	People    int64 `json:"people"`
	Partners  int64 `json:"partners"`
	Images    int64 `json:"images"`
}

// DashboardSummary is everything the dashboard page renders in one response
type DashboardSummary struct {
	Counts           DashboardCounts   `json:"counts"`
	TotalDonations   float64           `json:"total_donations"`
	FormattedTotal   string            `json:"formatted_total"`
	RecentDonations  []models.Donation `json:"recent_donations"`
	TotalsPerProject []ProjectTotal    `json:"totals_per_project"`
}

// ProjectAnalytics is the month-bucketed donation series for one project
type ProjectAnalytics struct {
	ProjectID uint                    `json:"project_id"`
	Title     string                  `json:"title"`
	Months    []aggregate.MonthBucket `json:"months"`
	Total     float64                 `json:"total"`
}
