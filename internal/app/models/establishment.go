package models

import "time"

// Establishment defines the establishment model based on the 'establishments' table
type Establishment struct {
	ID         int64             `json:"id" db:"id"`
	Name       string            `json:"name" db:"name"`
	Street     string            `json:"street" db:"street"`
	City       string            `json:"city" db:"city"`
	PostalCode string            `json:"postalCode" db:"postal_code"`
	Country    string            `json:"country" db:"country"` // Default "Algérie"
	Phone      string            `json:"phone" db:"phone"`
	Email      string            `json:"email" db:"email"`
	Type       EstablishmentType `json:"type" db:"type"`
	IsActive   bool              `json:"isActive" db:"is_active"`
	CreatedAt  time.Time         `json:"createdAt" db:"created_at"`

	Services []*Service `json:"services,omitempty"` // Relation, no db tag
}
