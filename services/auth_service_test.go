package services

import (
	"errors"
	"testing"

	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/models"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	user, err := Register(dto.RegisterRequest{
		Email:    "admin@jewel.org",
		Password: "secret123",
		Name:     strPtr("Ngozi"),
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}

	// Duplicate email is a validation failure, not an internal error.
	if _, err := Register(dto.RegisterRequest{
		Email: "admin@jewel.org", Password: "secret123",
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for duplicate email, got %v", err)
	}

	auth, err := Login(dto.LoginRequest{Email: "admin@jewel.org", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if auth.Token == "" {
		t.Fatal("expected a token")
	}
	if auth.User.Password != "" {
		t.Fatal("password must not leak in the auth response")
	}

	claims, err := ValidateToken(auth.Token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != "admin@jewel.org" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := Register(dto.RegisterRequest{
		Email: "admin@jewel.org", Password: "secret123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := Login(dto.LoginRequest{
		Email: "admin@jewel.org", Password: "wrong",
	}); err == nil {
		t.Fatal("expected wrong password to fail")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected garbage token to fail")
	}
}
