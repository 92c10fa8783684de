package models

import (
	"time"
)

// PersonType discriminates how a person is shown and filtered.
type PersonType string

const (
	PersonSupervisor PersonType = "supervisor"
	PersonVolunteer  PersonType = "volunteer"
	PersonTrustee    PersonType = "trustee"
)

// ValidPersonType reports whether t is one of the closed person variants.
func ValidPersonType(t PersonType) bool {
	switch t {
	case PersonSupervisor, PersonVolunteer, PersonTrustee:
		return true
	}
	return false
}

// Person is a supervisor, volunteer or trustee profile.
type Person struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	FirstName string     `json:"first_name" gorm:"not null"`
	LastName  string     `json:"last_name" gorm:"not null"`
	Bio       string     `json:"bio" gorm:"default:null"`
	Type      PersonType `json:"type" gorm:"type:varchar(20);not null;index"`
	PhotoURL  string     `json:"photo_url" gorm:"default:null"`
	IsActive  *bool      `json:"is_active" gorm:"default:null"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
