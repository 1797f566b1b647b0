package models

// ServiceChief defines the service chief model based on the 'service_chiefs' table
type ServiceChief struct {
	ID              int64  `json:"id" db:"id"`
	UserID          int64  `json:"userId" db:"user_id"`
	FirstName       string `json:"firstName" db:"first_name"`
	LastName        string `json:"lastName" db:"last_name"`
	Phone           string `json:"phone" db:"phone"`
	ServiceID       int64  `json:"serviceId" db:"service_id"`
	EstablishmentID int64  `json:"establishmentId" db:"establishment_id"`
	IsActive        bool   `json:"isActive" db:"is_active"`

	User          *User          `json:"user,omitempty"`
	Establishment *Establishment `json:"establishment,omitempty"`
	Service       *Service       `json:"service,omitempty"`
}
