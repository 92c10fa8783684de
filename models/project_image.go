package models

import (
	"time"
)

// ImagePhase tells whether a project image shows the state before or after
// the project ran.
type ImagePhase string

const (
	ImageBefore ImagePhase = "before"
	ImageAfter  ImagePhase = "after"
)

// ValidImagePhase reports whether p is a known phase tag.
func ValidImagePhase(p ImagePhase) bool {
	return p == ImageBefore || p == ImageAfter
}

// ImageKind classifies an uploaded image for routing on the image host.
type ImageKind string

const (
	ImageKindProjectBefore ImageKind = "project_before"
	ImageKindProjectAfter  ImageKind = "project_after"
	ImageKindAvatar        ImageKind = "avatar"
	ImageKindPartner       ImageKind = "partner"
)

// ValidImageKind reports whether k is a known upload kind.
func ValidImageKind(k ImageKind) bool {
	switch k {
	case ImageKindProjectBefore, ImageKindProjectAfter, ImageKindAvatar, ImageKindPartner:
		return true
	}
	return false
}

// ProjectImage links a hosted image to a project.
type ProjectImage struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ProjectID   uint       `json:"project_id" gorm:"not null;index"`
	ImageURL    string     `json:"image_url" gorm:"not null"`
	Description ImagePhase `json:"description" gorm:"type:varchar(10);not null"`
	Type        ImageKind  `json:"type" gorm:"type:varchar(20);default:null"`
	CreatedAt   time.Time  `json:"created_at"`

	// ProjectTitle is denormalized from the projects table on reads.
	ProjectTitle string `json:"project_title,omitempty" gorm:"->;-:migration"`
}
