package dto

import "github.com/stagemed/stagemed/internal/app/models"

// LoginRequest represents login credentials. Students sign in with their
// matricule, every other role with an email address.
type LoginRequest struct {
	Email     string `json:"email"`
	Matricule string `json:"matricule"`
	Password  string `json:"password" binding:"required"`
}

// LoginResponse represents a successful authentication response
type LoginResponse struct {
	Status string      `json:"status" example:"success"`
	Token  string      `json:"token"`
	Data   LoginedUser `json:"data"`
}

// LoginedUser wraps the authenticated user payload
type LoginedUser struct {
	User UserResponse `json:"user"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID                 int64           `json:"id"`
	Email              string          `json:"email"`
	Role               models.RoleType `json:"role"`
	IsActive           bool            `json:"isActive"`
	MustChangePassword bool            `json:"mustChangePassword"`
}

// NewUserResponse maps a user model to its response form
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:                 user.ID,
		Email:              user.Email,
		Role:               user.Role,
		IsActive:           user.IsActive,
		MustChangePassword: user.MustChangePassword,
	}
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}
