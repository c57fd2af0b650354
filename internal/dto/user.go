package dto

import (
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
)

// CreateUserRequest is the admin-only user creation body.
type CreateUserRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Role            string `json:"role" binding:"omitempty,oneof=user admin"`
}

// ProfileResponse is the public view of a user profile.
type ProfileResponse struct {
	UserID    string `json:"userID"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// ToProfileResponse converts a domain.UserProfile to its response DTO
func ToProfileResponse(p domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserID:    p.UserID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Role:      string(p.Role),
	}
}
