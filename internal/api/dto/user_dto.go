package dto

import (
	"time"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// UpdateProfileRequest payload. Absent fields stay untouched.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
	JobTitle  *string `json:"job_title"`
	Phone     *string `json:"phone"`
}

// UpdateProfileStatusRequest payload.
type UpdateProfileStatusRequest struct {
	Status string `json:"status"`
}

// ResetPasswordRequest payload.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// UpdatePreferencesRequest payload. Absent fields stay untouched.
type UpdatePreferencesRequest struct {
	EmailNotifications *bool   `json:"email_notifications"`
	PushNotifications  *bool   `json:"push_notifications"`
	ProjectUpdates     *bool   `json:"project_updates"`
	TaskAssignments    *bool   `json:"task_assignments"`
	SystemMaintenance  *bool   `json:"system_maintenance"`
	DarkMode           *bool   `json:"dark_mode"`
	CompactView        *bool   `json:"compact_view"`
	Language           *string `json:"language"`
	Timezone           *string `json:"timezone"`
}

// PreferencesResponse per-user settings.
type PreferencesResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	EmailNotifications bool      `json:"email_notifications"`
	PushNotifications  bool      `json:"push_notifications"`
	ProjectUpdates     bool      `json:"project_updates"`
	TaskAssignments    bool      `json:"task_assignments"`
	SystemMaintenance  bool      `json:"system_maintenance"`
	DarkMode           bool      `json:"dark_mode"`
	CompactView        bool      `json:"compact_view"`
	Language           string    `json:"language"`
	Timezone           string    `json:"timezone"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewPreferencesResponse maps preferences.
func NewPreferencesResponse(p *domain.UserPreference) PreferencesResponse {
	return PreferencesResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		EmailNotifications: p.EmailNotifications,
		PushNotifications:  p.PushNotifications,
		ProjectUpdates:     p.ProjectUpdates,
		TaskAssignments:    p.TaskAssignments,
		SystemMaintenance:  p.SystemMaintenance,
		DarkMode:           p.DarkMode,
		CompactView:        p.CompactView,
		Language:           p.Language,
		Timezone:           p.Timezone,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
