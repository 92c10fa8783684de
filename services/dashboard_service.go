package services

import (
	"fmt"

	"github.com/jewelfoundation/admin-api/aggregate"
	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/repositories"
	"github.com/jewelfoundation/admin-api/utils"
)

// recentDonationCount matches the "Recent Donations" card on the dashboard.
const recentDonationCount = 8

// DashboardService assembles the derived views the dashboard and analytics
// pages render.
type DashboardService struct {
	donationRepo *repositories.DonationRepository
	projectRepo  *repositories.ProjectRepository
	personRepo   *repositories.PersonRepository
	partnerRepo  *repositories.PartnerRepository
	imageRepo    *repositories.ProjectImageRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService() *DashboardService {
	return &DashboardService{
		donationRepo: repositories.NewDonationRepository(),
		projectRepo:  repositories.NewProjectRepository(),
		personRepo:   repositories.NewPersonRepository(),
		partnerRepo:  repositories.NewPartnerRepository(),
		imageRepo:    repositories.NewProjectImageRepository(),
	}
}

// Summary computes entity counts, the running donation total (raw and
// formatted as Naira), the recent donations strip and the per-project totals.
// projectID filters the donation figures; zero means all projects.
func (s *DashboardService) Summary(projectID uint) (dto.DashboardSummary, error) {
	var summary dto.DashboardSummary
	var err error

	if summary.Counts.Projects, err = s.projectRepo.Count(); err != nil {
		return summary, err
	}
	if summary.Counts.Donations, err = s.donationRepo.Count(); err != nil {
		return summary, err
	}
	if summary.Counts.People, err = s.personRepo.Count(); err != nil {
		return summary, err
	}
	if summary.Counts.Partners, err = s.partnerRepo.Count(); err != nil {
		return summary, err
	}
	if summary.Counts.Images, err = s.imageRepo.Count(); err != nil {
		return summary, err
	}

	donations, err := s.donationRepo.FindAll()
	if err != nil {
		return summary, err
	}
	filtered := aggregate.FilterByProject(donations, projectID)

	summary.TotalDonations = aggregate.Sum(filtered)
	summary.FormattedTotal = utils.FormatNaira(summary.TotalDonations)
	summary.RecentDonations = aggregate.RecentN(filtered, recentDonationCount)

	if summary.TotalsPerProject, err = s.donationRepo.TotalsPerProject(); err != nil {
		return summary, err
	}

	return summary, nil
}

// ProjectAnalytics buckets one project's donations by month for the
// analytics chart.
func (s *DashboardService) ProjectAnalytics(projectID uint) (dto.ProjectAnalytics, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return dto.ProjectAnalytics{}, err
	}

	donations, err := s.donationRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.ProjectAnalytics{}, err
	}

	title := project.Title
	if title == "" {
		title = fmt.Sprintf("Project %d", projectID)
	}

	return dto.ProjectAnalytics{
		ProjectID: projectID,
		Title:     title,
		Months:    aggregate.BucketByMonth(donations),
		Total:     aggregate.Sum(donations),
	}, nil
}
