package dto

import (
	"time"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// CreateSupplierRequest payload.
type CreateSupplierRequest struct {
	Name          string  `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}

// UpdateSupplierRequest payload. Absent fields stay untouched.
type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}

// SupplierResponse vendor record.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson *string   `json:"contact_person"`
	Email         *string   `json:"email"`
	Phone         *string   `json:"phone"`
	Address       *string   `json:"address"`
	CreatedBy     *string   `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewSupplierResponse maps a supplier.
func NewSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// CreatePurchaseOrderRequest payload.
type CreatePurchaseOrderRequest struct {
	PONumber         string     `json:"po_number"`
	SupplierID       *string    `json:"supplier_id"`
	Status           string     `json:"status"`
	TotalAmount      float64    `json:"total_amount"`
	OrderDate        time.Time  `json:"order_date"`
	ExpectedDelivery *time.Time `json:"expected_delivery"`
	Notes            *string    `json:"notes"`
}

// UpdatePurchaseOrderRequest payload. Absent fields stay untouched.
type UpdatePurchaseOrderRequest struct {
	SupplierID       *string    `json:"supplier_id"`
	Status           *string    `json:"status"`
	TotalAmount      *float64   `json:"total_amount"`
	OrderDate        *time.Time `json:"order_date"`
	ExpectedDelivery *time.Time `json:"expected_delivery"`
	Notes            *string    `json:"notes"`
}

// PurchaseOrderResponse order record.
type PurchaseOrderResponse struct {
	ID               string     `json:"id"`
	PONumber         string     `json:"po_number"`
	SupplierID       *string    `json:"supplier_id"`
	Status           string     `json:"status"`
	TotalAmount      float64    `json:"total_amount"`
	OrderDate        time.Time  `json:"order_date"`
	ExpectedDelivery *time.Time `json:"expected_delivery"`
	Notes            *string    `json:"notes"`
	CreatedBy        *string    `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// NewPurchaseOrderResponse maps a purchase order.
func NewPurchaseOrderResponse(po *domain.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:               po.ID,
		PONumber:         po.PONumber,
		SupplierID:       po.SupplierID,
		Status:           po.Status,
		TotalAmount:      po.TotalAmount,
		OrderDate:        po.OrderDate,
		ExpectedDelivery: po.ExpectedDelivery,
		Notes:            po.Notes,
		CreatedBy:        po.CreatedBy,
		CreatedAt:        po.CreatedAt,
		UpdatedAt:        po.UpdatedAt,
	}
}
