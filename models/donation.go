package models

import (
	"time"
)

// Donation is a monetary contribution tied to one project. Amounts are Naira.
// Donations are historical facts: admins may correct donor_name/amount or
// delete a row, nothing else mutates them.
type Donation struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProjectID    uint      `json:"project_id" gorm:"not null;index"`
	DonorName    string    `json:"donor_name" gorm:"default:null"`
	Amount       float64   `json:"amount" gorm:"not null"`
	DonationDate time.Time `json:"donation_date"`
	CreatedAt    time.Time `json:"created_at"`

	// ProjectTitle is denormalized from the projects table on reads.
	ProjectTitle string `json:"project_title,omitempty" gorm:"->;-:migration"`
}
