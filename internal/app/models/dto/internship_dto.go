package dto

// CreateInternshipRequest represents a new internship posting.
// The posting is published immediately and total places start equal to
// available places.
type CreateInternshipRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	ServiceID       int64    `json:"serviceId" binding:"required,min=1"`
	EstablishmentID int64    `json:"establishmentId" binding:"required,min=1"`
	Duration        int      `json:"duration" binding:"required,min=1"`
	StartDate       string   `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate         string   `json:"endDate" binding:"required"`   // YYYY-MM-DD
	AvailablePlaces int      `json:"availablePlaces" binding:"required,min=1"`
	Requirements    []string `json:"requirements"`
	Skills          []string `json:"skills"`
}

// InternshipFilter carries the list filters for internship queries
type InternshipFilter struct {
	ServiceID       int64
	EstablishmentID int64
	Search          string
	Page            int
	Size            int
}
