package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/api/dto"
	"github.com/spec-kit/erp-backend/internal/service"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// DashboardHandler serves the aggregated landing page counters.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats GET /dashboard/stats.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	stats, err := h.dashboard.Stats(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewDashboardStatsResponse(stats)})
}
