package models

import "time"

// Internship defines the internship posting model based on the 'internships' table
type Internship struct {
	ID              int64      `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Description     string     `json:"description" db:"description"`
	ServiceID       int64      `json:"serviceId" db:"service_id"`
	EstablishmentID int64      `json:"establishmentId" db:"establishment_id"`
	ChiefID         int64      `json:"chiefId" db:"chief_id"`
	Duration        int        `json:"duration" db:"duration"` // Weeks
	StartDate       time.Time  `json:"startDate" db:"start_date"`
	EndDate         time.Time  `json:"endDate" db:"end_date"`
	AvailablePlaces int        `json:"availablePlaces" db:"available_places"`
	TotalPlaces     int        `json:"totalPlaces" db:"total_places"`
	Requirements    []string   `json:"requirements" db:"requirements"`
	Skills          []string   `json:"skills" db:"skills"`
	IsActive        bool       `json:"isActive" db:"is_active"`
	IsPublished     bool       `json:"isPublished" db:"is_published"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty" db:"published_at"`

	Service       *Service       `json:"service,omitempty"`
	Establishment *Establishment `json:"establishment,omitempty"`
	Chief         *ServiceChief  `json:"chief,omitempty"`
}

// HasAvailablePlaces reports whether the posting can still accept applications
func (i *Internship) HasAvailablePlaces() bool {
	return i.AvailablePlaces > 0
}
