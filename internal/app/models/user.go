package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID                 int64      `json:"id" db:"id" example:"1"`
	Email              string     `json:"email" db:"email" example:"user@univ.dz"`
	Password           string     `json:"-" db:"password"` // Hashed, excluded from JSON
	Role               RoleType   `json:"role" db:"role" example:"student"`
	IsActive           bool       `json:"isActive" db:"is_active" example:"true"`
	MustChangePassword bool       `json:"mustChangePassword" db:"must_change_password" example:"false"`
	LastLoginAt        *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
}
