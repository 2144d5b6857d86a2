package dto

import (
	"time"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// UpdateSystemSettingsRequest payload. Absent fields stay untouched.
type UpdateSystemSettingsRequest struct {
	AutoBackup *bool `json:"auto_backup"`
	APIAccess  *bool `json:"api_access"`
	DebugMode  *bool `json:"debug_mode"`
}

// SystemSettingsResponse system-wide toggles.
type SystemSettingsResponse struct {
	ID         string    `json:"id"`
	AutoBackup bool      `json:"auto_backup"`
	APIAccess  bool      `json:"api_access"`
	DebugMode  bool      `json:"debug_mode"`
	CreatedBy  *string   `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewSystemSettingsResponse maps the settings row.
func NewSystemSettingsResponse(s *domain.SystemSetting) SystemSettingsResponse {
	return SystemSettingsResponse{
		ID:         s.ID,
		AutoBackup: s.AutoBackup,
		APIAccess:  s.APIAccess,
		DebugMode:  s.DebugMode,
		CreatedBy:  s.CreatedBy,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// CreateGroupRequest payload.
type CreateGroupRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// GroupResponse named collection of users.
type GroupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewGroupResponse maps a group.
func NewGroupResponse(g *domain.Group) GroupResponse {
	return GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CreatedBy:   g.CreatedBy,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// DashboardStatsResponse landing page counters.
type DashboardStatsResponse struct {
	TotalRevenue        float64 `json:"total_revenue"`
	TotalOrders         int64   `json:"total_orders"`
	ActiveEmployees     int64   `json:"active_employees"`
	TotalInventoryItems int64   `json:"total_inventory_items"`
	TotalStock          int64   `json:"total_stock"`
	LowStockItems       int64   `json:"low_stock_items"`
	OutOfStockItems     int64   `json:"out_of_stock_items"`
	TotalLeadsValue     float64 `json:"total_leads_value"`
}

// NewDashboardStatsResponse maps dashboard counters.
func NewDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalRevenue:        s.TotalRevenue,
		TotalOrders:         s.TotalOrders,
		ActiveEmployees:     s.ActiveEmployees,
		TotalInventoryItems: s.TotalInventoryItems,
		TotalStock:          s.TotalStock,
		LowStockItems:       s.LowStockItems,
		OutOfStockItems:     s.OutOfStockItems,
		TotalLeadsValue:     s.TotalLeadsValue,
	}
}
