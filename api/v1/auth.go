package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/services"
)

// Register creates a new admin account
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and a password of at least 6 characters are required"})
		return
	}

	user, err := services.Register(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created", "id": user.ID})
}

// Login authenticates an admin and sets the access_token cookie alongside
// the token in the response body.
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	auth, err := services.Login(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	maxAge := int(time.Until(auth.ExpiresAt).Seconds())
	c.SetCookie("access_token", auth.Token, maxAge, "/", "", false, true)

	c.JSON(http.StatusOK, auth)
}

// Logout clears the access_token cookie
func Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetCurrentUser returns the signed-in user's profile
func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("userId")

	user, err := services.GetUser(userID)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateCurrentUser applies a sparse profile update for the signed-in user
func UpdateCurrentUser(c *gin.Context) {
	userID := c.GetUint("userId")

	var req struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	outcome, err := services.UpdateProfile(userID, req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondUpdateOutcome(c, outcome, "Profile")
}
