package models

import (
	"time"
)

// Project represents a fundable initiative with an optional category and
// target donation amount.
type Project struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Title          string     `json:"title" gorm:"not null"`
	Description    string     `json:"description" gorm:"default:null"`
	StartDate      *time.Time `json:"start_date" gorm:"type:date;default:null"`
	EndDate        *time.Time `json:"end_date" gorm:"type:date;default:null"`
	CategoryID     *uint      `json:"category_id" gorm:"index;default:null"`
	TargetDonation *float64   `json:"target_donation" gorm:"default:null"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// CategoryName is denormalized from the categories table on reads.
	CategoryName string `json:"category_name,omitempty" gorm:"->;-:migration"`
}
