package services

import (
	"errors"
	"testing"

	"github.com/jewelfoundation/admin-api/dto"
	"gorm.io/gorm"
)

func TestProjectCreateWithNullDefaults(t *testing.T) {
	setupTestDB(t)
	svc := NewProjectService()

	created, err := svc.CreateProject(dto.CreateProjectRequest{Title: "Community Garden"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := svc.GetProject(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Title != "Community Garden" {
		t.Fatalf("unexpected title: %q", fetched.Title)
	}
	if fetched.StartDate != nil || fetched.EndDate != nil {
		t.Fatalf("omitted dates must stay null: %+v", fetched)
	}
	if fetched.CategoryID != nil || fetched.TargetDonation != nil {
		t.Fatalf("omitted optionals must stay null: %+v", fetched)
	}
	if fetched.CategoryName != "" {
		t.Fatalf("no category, expected empty joined name, got %q", fetched.CategoryName)
	}
}

func TestProjectJoinedCategoryName(t *testing.T) {
	setupTestDB(t)
	categories := NewCategoryService()
	projects := NewProjectService()

	category, _ := categories.CreateCategory(dto.CreateCategoryRequest{Name: "Water"})
	created, err := projects.CreateProject(dto.CreateProjectRequest{
		Title:      "Borehole",
		CategoryID: uintPtr(category.ID),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := projects.GetProject(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.CategoryName != "Water" {
		t.Fatalf("expected joined category name, got %q", fetched.CategoryName)
	}

	listed, err := projects.ListProjects()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].CategoryName != "Water" {
		t.Fatalf("list missing joined name: %+v", listed)
	}
}

func TestProjectUpdateParsesDates(t *testing.T) {
	setupTestDB(t)
	svc := NewProjectService()

	created, _ := svc.CreateProject(dto.CreateProjectRequest{Title: "Clinic"})

	outcome, err := svc.UpdateProject(dto.UpdateProjectRequest{
		ID:        created.ID,
		StartDate: strPtr("2025-01-15"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if outcome != UpdateApplied {
		t.Fatalf("expected UpdateApplied, got %v", outcome)
	}

	fetched, _ := svc.GetProject(created.ID)
	if fetched.StartDate == nil || fetched.StartDate.Format("2006-01-02") != "2025-01-15" {
		t.Fatalf("start date not written: %+v", fetched.StartDate)
	}
}

func TestProjectUpdateRejectsBadDate(t *testing.T) {
	setupTestDB(t)
	svc := NewProjectService()

	created, _ := svc.CreateProject(dto.CreateProjectRequest{Title: "Clinic"})

	_, err := svc.UpdateProject(dto.UpdateProjectRequest{
		ID:        created.ID,
		StartDate: strPtr("not-a-date"),
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	fetched, _ := svc.GetProject(created.ID)
	if fetched.StartDate != nil {
		t.Fatal("failed update must not write")
	}
}

func TestProjectDeleteCascades(t *testing.T) {
	setupTestDB(t)
	projects := NewProjectService()
	donations := NewDonationService()
	images := NewProjectImageService()

	project, _ := projects.CreateProject(dto.CreateProjectRequest{Title: "Well"})
	other, _ := projects.CreateProject(dto.CreateProjectRequest{Title: "Untouched"})

	if _, err := donations.CreateDonation(dto.CreateDonationRequest{
		ProjectID: project.ID, DonorName: "Ada", Amount: 500,
	}); err != nil {
		t.Fatalf("create donation: %v", err)
	}
	if _, err := donations.CreateDonation(dto.CreateDonationRequest{
		ProjectID: other.ID, DonorName: "Chidi", Amount: 100,
	}); err != nil {
		t.Fatalf("create donation: %v", err)
	}
	if _, err := images.AddImages(dto.AddProjectImagesRequest{
		ProjectID: project.ID,
		Images: []dto.ProjectImageInput{
			{ImageURL: "https://img.example/1.jpg", Description: "before"},
		},
	}); err != nil {
		t.Fatalf("add images: %v", err)
	}

	outcome, err := projects.DeleteProject(project.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if outcome != DeleteDone {
		t.Fatalf("expected DeleteDone, got %v", outcome)
	}

	if _, err := projects.GetProject(project.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("project should be gone, got %v", err)
	}
	left, _ := donations.ListDonations(0)
	if len(left) != 1 || left[0].ProjectID != other.ID {
		t.Fatalf("cascade should only remove the project's donations: %+v", left)
	}
	imgs, _ := images.ListImages(project.ID)
	if len(imgs) != 0 {
		t.Fatalf("cascade should remove images, got %d", len(imgs))
	}
}

func TestProjectDeleteIdempotent(t *testing.T) {
	setupTestDB(t)
	svc := NewProjectService()

	project, _ := svc.CreateProject(dto.CreateProjectRequest{Title: "Well"})

	if outcome, _ := svc.DeleteProject(project.ID); outcome != DeleteDone {
		t.Fatalf("expected DeleteDone, got %v", outcome)
	}
	outcome, err := svc.DeleteProject(project.ID)
	if err != nil {
		t.Fatalf("second delete errored: %v", err)
	}
	if outcome != DeleteNotFound {
		t.Fatalf("expected DeleteNotFound on repeat, got %v", outcome)
	}
}
