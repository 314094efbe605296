// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/fynora/backend/internal/application/usecase/auth"
)

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileRequest represents the request body for profile updates.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Company  *string `json:"company,omitempty" binding:"omitempty,max=255"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
}

// AuthResponse represents the response for the login endpoint.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts an auth UserOutput to a UserResponse DTO.
func ToUserResponse(user *auth.UserOutput) UserResponse {
	return UserResponse{
		ID:      user.ID.String(),
		Email:   user.Email,
		Name:    user.Name,
		Company: user.Company,
	}
}
