package models

import (
	"time"
)

// Category is a grouping label for projects. It cannot be deleted while any
// project still references it; the guard lives in the category service, not
// in a database constraint.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"default:null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
