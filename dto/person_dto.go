package dto

import (
	"github.com/jewelfoundation/admin-api/models"
)

// CreatePersonRequest represents the payload for creating a person profile
type CreatePersonRequest struct {
	FirstName string            `json:"first_name" binding:"required"`
	LastName  string            `json:"last_name" binding:"required"`
	Bio       string            `json:"bio"`
	Type      models.PersonType `json:"type" binding:"required"`
	PhotoURL  string            `json:"photo_url"`
	IsActive  *bool             `json:"is_active"`
}

// UpdatePersonRequest represents a sparse person update. Only fields
// present in the JSON body are written.
type UpdatePersonRequest struct {
	ID        uint               `json:"id" binding:"required"`
	FirstName *string            `json:"first_name"`
	LastName  *string            `json:"last_name"`
	Bio       *string            `json:"bio"`
	Type      *models.PersonType `json:"type"`
	PhotoURL  *string            `json:"photo_url"`
	IsActive  *bool              `json:"is_active"`
}

// Fields maps the provided values to their database columns
func (r UpdatePersonRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.FirstName != nil {
		fields["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["last_name"] = *r.LastName
	}
	if r.Bio != nil {
		fields["bio"] = *r.Bio
	}
	if r.Type != nil {
		fields["type"] = *r.Type
	}
	if r.PhotoURL != nil {
		fields["photo_url"] = *r.PhotoURL
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	return fields
}
