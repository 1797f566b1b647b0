package models

// Dean defines the dean model based on the 'deans' table
type Dean struct {
	ID        int64  `json:"id" db:"id"`
	UserID    int64  `json:"userId" db:"user_id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Phone     string `json:"phone" db:"phone"`
	Title     string `json:"title" db:"title"` // Default "Doyen"
	IsActive  bool   `json:"isActive" db:"is_active"`

	User *User `json:"user,omitempty"`
}
