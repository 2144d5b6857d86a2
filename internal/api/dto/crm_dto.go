package dto

import (
	"time"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// CreateCustomerRequest payload.
type CreateCustomerRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// UpdateCustomerRequest payload. Absent fields stay untouched.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// CustomerResponse CRM record.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	CreatedBy *string   `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCustomerResponse maps a customer.
func NewCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CreateSalesLeadRequest payload.
type CreateSalesLeadRequest struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   *string  `json:"phone"`
	Company *string  `json:"company"`
	Status  string   `json:"status"`
	Value   *float64 `json:"value"`
	Notes   *string  `json:"notes"`
}

// UpdateSalesLeadRequest payload. Absent fields stay untouched.
type UpdateSalesLeadRequest struct {
	Name    *string  `json:"name"`
	Email   *string  `json:"email"`
	Phone   *string  `json:"phone"`
	Company *string  `json:"company"`
	Status  *string  `json:"status"`
	Value   *float64 `json:"value"`
	Notes   *string  `json:"notes"`
}

// SalesLeadResponse pipeline record.
type SalesLeadResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	Status    string    `json:"status"`
	Value     *float64  `json:"value"`
	Notes     *string   `json:"notes"`
	CreatedBy *string   `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSalesLeadResponse maps a lead.
func NewSalesLeadResponse(l *domain.SalesLead) SalesLeadResponse {
	return SalesLeadResponse{
		ID:        l.ID,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Company:   l.Company,
		Status:    l.Status,
		Value:     l.Value,
		Notes:     l.Notes,
		CreatedBy: l.CreatedBy,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
