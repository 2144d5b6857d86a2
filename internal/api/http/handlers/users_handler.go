package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/api/dto"
	"github.com/spec-kit/erp-backend/internal/repository"
	"github.com/spec-kit/erp-backend/internal/service"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// UsersHandler covers the admin user surface plus the caller's own profile
// and notification preferences.
type UsersHandler struct {
	users *service.UserService
	auth  *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService, authService *service.AuthService) *UsersHandler {
	return &UsersHandler{users: userService, auth: authService}
}

// List GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	profiles, err := h.users.ListProfiles(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, dto.NewProfileResponse(&profiles[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	profile, err := h.users.GetProfile(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// Update PUT /users/:id/profile.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	profile, err := h.users.UpdateProfile(c.Context(), c.Params("id"), repository.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
		JobTitle:  req.JobTitle,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// SetStatus PUT /users/:id/status.
func (h *UsersHandler) SetStatus(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.UpdateProfileStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}
	if err := h.users.SetProfileStatus(c.Context(), c.Params("id"), req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "status updated"}})
}

// ResetPassword POST /users/:id/reset-password.
func (h *UsersHandler) ResetPassword(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.auth.ResetPassword(c.Context(), c.Params("id"), req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "password reset"}})
}

// UnlockAccount POST /users/:id/unlock-account.
func (h *UsersHandler) UnlockAccount(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.users.SetAccountLocked(c.Context(), c.Params("id"), false); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "account unlocked"}})
}

// MyProfile GET /profile.
func (h *UsersHandler) MyProfile(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	profile, err := h.users.GetProfile(c.Context(), principal.UserID())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// UpdateMyProfile PUT /profile.
func (h *UsersHandler) UpdateMyProfile(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	profile, err := h.users.UpdateProfile(c.Context(), principal.UserID(), repository.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
		JobTitle:  req.JobTitle,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// Delete DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	if err := h.users.DeleteUser(c.Context(), principal.UserID(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "user deleted"}})
}

// GetPreferences GET /profile/notifications.
func (h *UsersHandler) GetPreferences(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	pref, err := h.users.GetPreferences(c.Context(), principal.UserID())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPreferencesResponse(pref)})
}

// UpdatePreferences PUT /profile/notifications.
func (h *UsersHandler) UpdatePreferences(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	pref, err := h.users.UpdatePreferences(c.Context(), principal.UserID(), repository.PreferenceUpdate{
		EmailNotifications: req.EmailNotifications,
		PushNotifications:  req.PushNotifications,
		ProjectUpdates:     req.ProjectUpdates,
		TaskAssignments:    req.TaskAssignments,
		SystemMaintenance:  req.SystemMaintenance,
		DarkMode:           req.DarkMode,
		CompactView:        req.CompactView,
		Language:           req.Language,
		Timezone:           req.Timezone,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPreferencesResponse(pref)})
}
