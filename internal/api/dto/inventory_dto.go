package dto

import (
	"time"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// CreateInventoryItemRequest payload.
type CreateInventoryItemRequest struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Stock     int     `json:"stock"`
	UnitPrice float64 `json:"unit_price"`
	Supplier  string  `json:"supplier"`
	Status    string  `json:"status"`
}

// UpdateInventoryItemRequest payload. Absent fields stay untouched.
type UpdateInventoryItemRequest struct {
	Name      *string  `json:"name"`
	Category  *string  `json:"category"`
	Stock     *int     `json:"stock"`
	UnitPrice *float64 `json:"unit_price"`
	Supplier  *string  `json:"supplier"`
	Status    *string  `json:"status"`
}

// InventoryItemResponse stock record.
type InventoryItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Stock     int       `json:"stock"`
	UnitPrice float64   `json:"unit_price"`
	Supplier  string    `json:"supplier"`
	Status    string    `json:"status"`
	CreatedBy *string   `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewInventoryItemResponse maps an item.
func NewInventoryItemResponse(i *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:        i.ID,
		Name:      i.Name,
		Category:  i.Category,
		Stock:     i.Stock,
		UnitPrice: i.UnitPrice,
		Supplier:  i.Supplier,
		Status:    i.Status,
		CreatedBy: i.CreatedBy,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
