package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/api/dto"
	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	"github.com/spec-kit/erp-backend/internal/service"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// SettingsHandler covers the system settings row and user groups.
type SettingsHandler struct {
	settings *service.SettingsService
	groups   repository.SettingsRepository
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settings *service.SettingsService, groups repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settings: settings, groups: groups}
}

// GetSettings GET /system-settings.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	row, err := h.settings.Get(c.Context(), principal.UserID())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewSystemSettingsResponse(row)})
}

// UpdateSettings PUT /system-settings.
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateSystemSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	row, err := h.settings.Update(c.Context(), principal.UserID(), repository.SystemSettingUpdate{
		AutoBackup: req.AutoBackup,
		APIAccess:  req.APIAccess,
		DebugMode:  req.DebugMode,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewSystemSettingsResponse(row)})
}

// CreateGroup POST /system-settings/groups.
func (h *SettingsHandler) CreateGroup(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	group := &domain.Group{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   principal.UserID(),
	}
	if err := h.groups.CreateGroup(c.Context(), group); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewGroupResponse(group)})
}

// ListGroups GET /system-settings/groups.
func (h *SettingsHandler) ListGroups(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	groups, err := h.groups.ListGroups(c.Context(), queryInt(c, "limit", 100), queryInt(c, "skip", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		items = append(items, dto.NewGroupResponse(&groups[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetGroup GET /system-settings/groups/:id.
func (h *SettingsHandler) GetGroup(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	group, err := h.groups.GetGroup(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewGroupResponse(group)})
}

// DeleteGroup DELETE /system-settings/groups/:id.
func (h *SettingsHandler) DeleteGroup(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.groups.DeleteGroup(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "group deleted"}})
}
