package services

import (
	"strings"
	"testing"

	"github.com/jewelfoundation/admin-api/dto"
)

func TestDashboardSummary(t *testing.T) {
	setupTestDB(t)
	projects := NewProjectService()
	donations := NewDonationService()
	svc := NewDashboardService()

	well, _ := projects.CreateProject(dto.CreateProjectRequest{Title: "Well"})
	school, _ := projects.CreateProject(dto.CreateProjectRequest{Title: "School"})

	donations.CreateDonation(dto.CreateDonationRequest{ProjectID: well.ID, Amount: 500, DonorName: "Ada"})
	donations.CreateDonation(dto.CreateDonationRequest{ProjectID: school.ID, Amount: 200})
	donations.CreateDonation(dto.CreateDonationRequest{ProjectID: well.ID, Amount: 300})

	summary, err := svc.Summary(0)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Counts.Projects != 2 || summary.Counts.Donations != 3 {
		t.Fatalf("unexpected counts: %+v", summary.Counts)
	}
	if summary.TotalDonations != 1000 {
		t.Fatalf("expected total 1000, got %v", summary.TotalDonations)
	}
	if !strings.HasPrefix(summary.FormattedTotal, "₦") {
		t.Fatalf("expected Naira prefix, got %q", summary.FormattedTotal)
	}
	if len(summary.RecentDonations) != 3 {
		t.Fatalf("expected 3 recent donations, got %d", len(summary.RecentDonations))
	}
	// Newest fetched row comes first, anonymous names substituted.
	if summary.RecentDonations[0].Amount != 300 {
		t.Fatalf("unexpected recent order: %+v", summary.RecentDonations)
	}
	if summary.RecentDonations[1].DonorName != "Anonymous" {
		t.Fatalf("expected anonymous donor, got %q", summary.RecentDonations[1].DonorName)
	}
	if len(summary.TotalsPerProject) != 2 {
		t.Fatalf("expected 2 per-project totals, got %d", len(summary.TotalsPerProject))
	}
}

func TestDashboardSummaryFiltered(t *testing.T) {
	setupTestDB(t)
	projects := NewProjectService()
	donations := NewDonationService()
	svc := NewDashboardService()

	well, _ := projects.CreateProject(dto.CreateProjectRequest{Title: "Well"})
	school, _ := projects.CreateProject(dto.CreateProjectRequest{Title: "School"})

	donations.CreateDonation(dto.CreateDonationRequest{ProjectID: well.ID, Amount: 500})
	donations.CreateDonation(dto.CreateDonationRequest{ProjectID: school.ID, Amount: 200})

	summary, err := svc.Summary(well.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalDonations != 500 {
		t.Fatalf("expected filtered total 500, got %v", summary.TotalDonations)
	}
	if len(summary.RecentDonations) != 1 {
		t.Fatalf("expected 1 recent donation, got %d", len(summary.RecentDonations))
	}
	// Counts stay global even when the donation figures are filtered.
	if summary.Counts.Donations != 2 {
		t.Fatalf("expected global donation count, got %d", summary.Counts.Donations)
	}
}

func TestProjectAnalytics(t *testing.T) {
	setupTestDB(t)
	projects := NewProjectService()
	donations := NewDonationService()
	svc := NewDashboardService()

	well, _ := projects.CreateProject(dto.CreateProjectRequest{Title: "Well"})
	donations.CreateDonation(dto.CreateDonationRequest{ProjectID: well.ID, Amount: 500})
	donations.CreateDonation(dto.CreateDonationRequest{ProjectID: well.ID, Amount: 250})

	analytics, err := svc.ProjectAnalytics(well.ID)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if analytics.Title != "Well" || analytics.Total != 750 {
		t.Fatalf("unexpected analytics: %+v", analytics)
	}
	// Both rows were created just now, so they share one month bucket.
	if len(analytics.Months) != 1 || analytics.Months[0].Total != 750 {
		t.Fatalf("unexpected buckets: %+v", analytics.Months)
	}
}
