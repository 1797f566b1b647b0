package models

// Doctor defines the doctor model based on the 'doctors' table
type Doctor struct {
	ID              int64  `json:"id" db:"id"`
	UserID          int64  `json:"userId" db:"user_id"`
	FirstName       string `json:"firstName" db:"first_name"`
	LastName        string `json:"lastName" db:"last_name"`
	Specialty       string `json:"specialty" db:"specialty"`
	Phone           string `json:"phone" db:"phone"`
	LicenseNumber   string `json:"licenseNumber" db:"license_number"`
	EstablishmentID int64  `json:"establishmentId" db:"establishment_id"`
	ServiceID       int64  `json:"serviceId" db:"service_id"`
	IsActive        bool   `json:"isActive" db:"is_active"`

	User          *User          `json:"user,omitempty"`
	Establishment *Establishment `json:"establishment,omitempty"`
	Service       *Service       `json:"service,omitempty"`
}
