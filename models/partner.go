package models

import (
	"time"
)

// Partner is an external organization displayed with its logo and link.
type Partner struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	LogoURL    string    `json:"logo_url" gorm:"default:null"`
	WebsiteURL string    `json:"website_url" gorm:"default:null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
