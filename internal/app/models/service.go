package models

import "time"

// Service defines the medical service model based on the 'services' table
type Service struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	Code            string    `json:"code" db:"code"` // Stored uppercase, unique
	EstablishmentID int64     `json:"establishmentId" db:"establishment_id"`
	ChiefID         *int64    `json:"chiefId,omitempty" db:"chief_id"`
	Capacity        int       `json:"capacity" db:"capacity"` // Default 5
	IsActive        bool      `json:"isActive" db:"is_active"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`

	Establishment *Establishment `json:"establishment,omitempty"`
	Chief         *ServiceChief  `json:"chief,omitempty"`
}
