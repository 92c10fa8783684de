package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/models"
)

// APIError carries the status code and error message of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// MutationResult is the body returned by create, update and delete calls.
type MutationResult struct {
	Message      string `json:"message"`
	ID           uint   `json:"id"`
	AffectedRows int64  `json:"affectedRows"`
}

// Client is a typed HTTP client for the admin API. Set the bearer token once
// after login; every call takes a context so callers control cancellation.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client against baseURL, e.g. "http://localhost:8080/api".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken sets the bearer token used on subsequent calls
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var failure struct {
			Error string `json:"error"`
		}
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Error != "" {
			msg = failure.Error
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func idQuery(name string, id uint) url.Values {
	return url.Values{name: []string{strconv.FormatUint(uint64(id), 10)}}
}

// Login authenticates and stores the returned token on the client
func (c *Client) Login(ctx context.Context, email, password string) (dto.AuthResponse, error) {
	var auth dto.AuthResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &auth); err != nil {
		return dto.AuthResponse{}, err
	}
	c.token = auth.Token
	return auth, nil
}

// Register creates a new admin account
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &result)
	return result, err
}

// Categories

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var items []models.Category
	err := c.get(ctx, "/categories", nil, &items)
	return items, err
}

func (c *Client) GetCategory(ctx context.Context, id uint) (models.Category, error) {
	var item models.Category
	err := c.get(ctx, "/categories", idQuery("id", id), &item)
	return item, err
}

func (c *Client) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodPost, "/categories", nil, req, &result)
	return result, err
}

func (c *Client) UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodPut, "/categories", nil, req, &result)
	return result, err
}

func (c *Client) DeleteCategory(ctx context.Context, id uint) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodDelete, "/categories", nil, dto.IDRequest{ID: id}, &result)
	return result, err
}

// Projects

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var items []models.Project
	err := c.get(ctx, "/projects", nil, &items)
	return items, err
}

func (c *Client) GetProject(ctx context.Context, id uint) (models.Project, error) {
	var item models.Project
	err := c.get(ctx, "/projects", idQuery("id", id), &item)
	return item, err
}

func (c *Client) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodPost, "/projects", nil, req, &result)
	return result, err
}

func (c *Client) UpdateProject(ctx context.Context, req dto.UpdateProjectRequest) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodPut, "/projects", nil, req, &result)
	return result, err
}

func (c *Client) DeleteProject(ctx context.Context, id uint) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodDelete, "/projects", nil, dto.IDRequest{ID: id}, &result)
	return result, err
}

// ProjectAnalytics fetches the month-bucketed donation series for one project
func (c *Client) ProjectAnalytics(ctx context.Context, projectID uint) (dto.ProjectAnalytics, error) {
	var analytics dto.ProjectAnalytics
	err := c.get(ctx, "/projects/analytics", idQuery("id", projectID), &analytics)
	return analytics, err
}

// Donations

// ListDonations fetches donations; projectID zero means all projects.
func (c *Client) ListDonations(ctx context.Context, projectID uint) ([]models.Donation, error) {
	var query url.Values
	if projectID != 0 {
		query = idQuery("project_id", projectID)
	}
	var items []models.Donation
	err := c.get(ctx, "/donations", query, &items)
	return items, err
}

func (c *Client) GetDonation(ctx context.Context, id uint) (models.Donation, error) {
	var item models.Donation
	err := c.get(ctx, "/donations", idQuery("id", id), &item)
	return item, err
}

func (c *Client) CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodPost, "/donations", nil, req, &result)
	return result, err
}

func (c *Client) UpdateDonation(ctx context.Context, req dto.UpdateDonationRequest) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodPut, "/donations", nil, req, &result)
	return result, err
}

func (c *Client) DeleteDonation(ctx context.Context, id uint) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodDelete, "/donations", nil, dto.IDRequest{ID: id}, &result)
	return result, err
}

// DonationTotalsPerProject fetches the summed donations grouped by project
func (c *Client) DonationTotalsPerProject(ctx context.Context) ([]dto.ProjectTotal, error) {
	var totals []dto.ProjectTotal
	err := c.get(ctx, "/donations", url.Values{"custom": []string{"total_per_project"}}, &totals)
	return totals, err
}

// DonationsGroupedByAmount fetches donation counts grouped by amount
func (c *Client) DonationsGroupedByAmount(ctx context.Context) ([]dto.AmountCount, error) {
	var groups []dto.AmountCount
	err := c.get(ctx, "/donations", url.Values{"custom": []string{"group_by_amount"}}, &groups)
	return groups, err
}

// People

// ListPeople fetches people; personType empty means all types.
func (c *Client) ListPeople(ctx context.Context, personType models.PersonType) ([]models.Person, error) {
	var query url.Values
	if personType != "" {
		query = url.Values{"type": []string{string(personType)}}
	}
	var items []models.Person
	err := c.get(ctx, "/people", query, &items)
	return items, err
}

func (c *Client) GetPerson(ctx context.Context, id uint) (models.Person, error) {
	var item models.Person
	err := c.get(ctx, "/people", idQuery("id", id), &item)
	return item, err
}

func (c *Client) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodPost, "/people", nil, req, &result)
	return result, err
}

func (c *Client) UpdatePerson(ctx context.Context, req dto.UpdatePersonRequest) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodPut, "/people", nil, req, &result)
	return result, err
}

func (c *Client) DeletePerson(ctx context.Context, id uint) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodDelete, "/people", nil, dto.IDRequest{ID: id}, &result)
	return result, err
}

// Partners

func (c *Client) ListPartners(ctx context.Context) ([]models.Partner, error) {
	var items []models.Partner
	err := c.get(ctx, "/partners", nil, &items)
	return items, err
}

func (c *Client) GetPartner(ctx context.Context, id uint) (models.Partner, error) {
	var item models.Partner
	err := c.get(ctx, "/partners", idQuery("id", id), &item)
	return item, err
}

func (c *Client) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodPost, "/partners", nil, req, &result)
	return result, err
}

func (c *Client) UpdatePartner(ctx context.Context, req dto.UpdatePartnerRequest) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodPut, "/partners", nil, req, &result)
	return result, err
}

func (c *Client) DeletePartner(ctx context.Context, id uint) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodDelete, "/partners", nil, dto.IDRequest{ID: id}, &result)
	return result, err
}

// Project images

// ListProjectImages fetches project images; projectID zero means all.
func (c *Client) ListProjectImages(ctx context.Context, projectID uint) ([]models.ProjectImage, error) {
	var query url.Values
	if projectID != 0 {
		query = idQuery("project_id", projectID)
	}
	var items []models.ProjectImage
	err := c.get(ctx, "/project_images", query, &items)
	return items, err
}

func (c *Client) AddProjectImages(ctx context.Context, req dto.AddProjectImagesRequest) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodPost, "/project_images", nil, req, &result)
	return result, err
}

func (c *Client) DeleteProjectImage(ctx context.Context, id uint) (MutationResult, error) {
	var result MutationResult
	err := c.do(ctx, http.MethodDelete, "/project_images", nil, dto.IDRequest{ID: id}, &result)
	return result, err
}

// DashboardSummary fetches counts, totals and the recent donations strip.
// projectID narrows the donation figures; zero means all projects.
func (c *Client) DashboardSummary(ctx context.Context, projectID uint) (dto.DashboardSummary, error) {
	var query url.Values
	if projectID != 0 {
		query = idQuery("project_id", projectID)
	}
	var summary dto.DashboardSummary
	err := c.get(ctx, "/dashboard/summary", query, &summary)
	return summary, err
}
