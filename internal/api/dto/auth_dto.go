package dto

import (
	"time"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"access_token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ProfileResponse is the application-level user record.
type ProfileResponse struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	FirstName     *string    `json:"first_name"`
	LastName      *string    `json:"last_name"`
	AvatarURL     *string    `json:"avatar_url"`
	Bio           *string    `json:"bio"`
	JobTitle      *string    `json:"job_title"`
	Phone         *string    `json:"phone"`
	Status        *string    `json:"status"`
	LastLogin     *time.Time `json:"last_login"`
	AccountLocked bool       `json:"account_locked"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewProfileResponse maps a profile.
func NewProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:            p.ID,
		Email:         p.Email,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		AvatarURL:     p.AvatarURL,
		Bio:           p.Bio,
		JobTitle:      p.JobTitle,
		Phone:         p.Phone,
		Status:        p.Status,
		LastLogin:     p.LastLogin,
		AccountLocked: p.AccountLocked,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
