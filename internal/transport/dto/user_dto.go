package dto

import (
	"time"

	"github.com/google/uuid"

	"placement-portal/internal/models"
)

// RegisterRequest defines the structure for creating a new account.
// ADMIN is deliberately not an accepted role; admin accounts are provisioned
// out of band.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=STUDENT RECRUITER"`
}

// LoginRequest defines the structure for authenticating an account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public projection of an account.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// LogoutRequest carries the token identifier to revoke. Filled from the
// authenticated token, never from the body.
type LogoutRequest struct {
	TokenID   string    `json:"-" validate:"required"`
	ExpiresAt time.Time `json:"-"`
}

// ForgotPasswordRequest starts a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest consumes a reset token and sets a new password.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}
