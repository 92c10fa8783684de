package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jewelfoundation/admin-api/database"
	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupAPI wires the full route table against a fresh in-memory database and
// returns a ready router plus a valid bearer token.
func setupAPI(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
	t.Cleanup(func() { sqlDB.Close() })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api"))

	user, err := services.Register(dto.RegisterRequest{
		Email:    "admin@jewel.org",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	token, _, err := services.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return router, token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestHealthIsOpen(t *testing.T) {
	router, _ := setupAPI(t)

	rec := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestResourcesRequireToken(t *testing.T) {
	router, _ := setupAPI(t)

	for _, path := range []string{"/api/categories", "/api/projects", "/api/donations", "/api/dashboard/summary"} {
		rec := doJSON(t, router, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s without token: expected 401, got %d", path, rec.Code)
		}
		if decodeBody(t, rec)["error"] != "Unauthorized" {
			t.Fatalf("%s: unexpected body %s", path, rec.Body.String())
		}
	}
}

func TestCategoryLifecycleOverHTTP(t *testing.T) {
	router, token := setupAPI(t)

	// Create.
	rec := doJSON(t, router, http.MethodPost, "/api/categories", token,
		dto.CreateCategoryRequest{Name: "Water"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	id := uint(decodeBody(t, rec)["id"].(float64))
	if id == 0 {
		t.Fatal("expected created id")
	}

	// Missing name is a 400.
	rec = doJSON(t, router, http.MethodPost, "/api/categories", token,
		map[string]string{"description": "no name"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("create without name: expected 400, got %d", rec.Code)
	}

	// List and single fetch.
	rec = doJSON(t, router, http.MethodGet, "/api/categories", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/api/categories?id=999", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get unknown: expected 404, got %d", rec.Code)
	}

	// Sparse update.
	rec = doJSON(t, router, http.MethodPut, "/api/categories", token,
		map[string]interface{}{"id": id, "name": "Clean Water"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if decodeBody(t, rec)["affectedRows"].(float64) != 1 {
		t.Fatalf("update: expected affectedRows 1, got %s", rec.Body.String())
	}

	// Empty update payload.
	rec = doJSON(t, router, http.MethodPut, "/api/categories", token,
		map[string]interface{}{"id": id})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty update: expected 400, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "No fields to update" {
		t.Fatalf("empty update: unexpected body %s", rec.Body.String())
	}

	// Update of an unknown id.
	rec = doJSON(t, router, http.MethodPut, "/api/categories", token,
		map[string]interface{}{"id": 999, "name": "Ghost"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update unknown: expected 404, got %d", rec.Code)
	}

	// Delete, then delete again.
	rec = doJSON(t, router, http.MethodDelete, "/api/categories", token,
		dto.IDRequest{ID: id})
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodDelete, "/api/categories", token,
		dto.IDRequest{ID: id})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeat delete: expected 404, got %d", rec.Code)
	}
}

func TestCategoryDeleteBlockedOverHTTP(t *testing.T) {
	router, token := setupAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/categories", token,
		dto.CreateCategoryRequest{Name: "Education"})
	categoryID := uint(decodeBody(t, rec)["id"].(float64))

	rec = doJSON(t, router, http.MethodPost, "/api/projects", token,
		map[string]interface{}{"title": "School", "category_id": categoryID})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create project: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/categories", token,
		dto.IDRequest{ID: categoryID})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("linked delete: expected 400, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "Category not deleted. It may be linked to projects." {
		t.Fatalf("linked delete: unexpected body %s", rec.Body.String())
	}
}

func TestDonationCustomViewsOverHTTP(t *testing.T) {
	router, token := setupAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/projects", token,
		map[string]interface{}{"title": "Well"})
	projectID := uint(decodeBody(t, rec)["id"].(float64))

	for _, amount := range []float64{500, 500, 1000} {
		rec = doJSON(t, router, http.MethodPost, "/api/donations", token,
			map[string]interface{}{"project_id": projectID, "amount": amount})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create donation: expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	// Donation against an unknown project is a validation failure.
	rec = doJSON(t, router, http.MethodPost, "/api/donations", token,
		map[string]interface{}{"project_id": 999, "amount": 50})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("donation to unknown project: expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/donations?custom=group_by_amount", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("group_by_amount: expected 200, got %d", rec.Code)
	}
	var groups []dto.AmountCount
	if err := json.Unmarshal(rec.Body.Bytes(), &groups); err != nil {
		t.Fatalf("decode groups: %v", err)
	}
	if len(groups) != 2 || groups[0].Count != 2 {
		t.Fatalf("unexpected groups: %+v", groups)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/donations?custom=total_per_project", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("total_per_project: expected 200, got %d", rec.Code)
	}
	var totals []dto.ProjectTotal
	if err := json.Unmarshal(rec.Body.Bytes(), &totals); err != nil {
		t.Fatalf("decode totals: %v", err)
	}
	if len(totals) != 1 || totals[0].Total != 2000 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

func TestRegisterDuplicateEmailOverHTTP(t *testing.T) {
	router, _ := setupAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "",
		dto.RegisterRequest{Email: "admin@jewel.org", Password: "secret123"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(decodeBody(t, rec)["error"].(string), "email already registered") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestLoginSetsCookieOverHTTP(t *testing.T) {
	router, _ := setupAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Email: "admin@jewel.org", Password: "secret123"})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var cookie string
	for _, c := range rec.Result().Cookies() {
		if c.Name == "access_token" {
			cookie = c.Value
		}
	}
	if cookie == "" {
		t.Fatal("expected access_token cookie")
	}

	// The cookie alone authenticates.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: cookie})
	cookieRec := httptest.NewRecorder()
	router.ServeHTTP(cookieRec, req)
	if cookieRec.Code != http.StatusOK {
		t.Fatalf("me via cookie: expected 200, got %d", cookieRec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Email: "admin@jewel.org", Password: "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", rec.Code)
	}
}
